package projector

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/store"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// debitOwner removes one persona from an L1 owner. A first-seen sender is created
// with balance 0; the balance never drops below 0.
func debitOwner(ctx context.Context, tx store.EntityStore, address string) error {
	if domain.IsZeroAddress(address) {
		return nil
	}

	owner, err := tx.GetOwner(ctx, address)
	if err != nil {
		return err
	}
	if owner == nil {
		owner = &schema.Owner{Address: address}
	} else {
		owner.Balance = decrement(ctx, address, owner.Balance)
	}

	return tx.SaveOwner(ctx, owner)
}

// creditOwner adds one persona to an L1 owner, creating it with balance 1
func creditOwner(ctx context.Context, tx store.EntityStore, address string) error {
	if domain.IsZeroAddress(address) {
		return nil
	}

	owner, err := tx.GetOwner(ctx, address)
	if err != nil {
		return err
	}
	if owner == nil {
		owner = &schema.Owner{Address: address}
	}
	owner.Balance++

	return tx.SaveOwner(ctx, owner)
}

// debitUser is the L2 counterpart of debitOwner
func debitUser(ctx context.Context, tx store.EntityStore, address string) error {
	if domain.IsZeroAddress(address) {
		return nil
	}

	user, err := tx.GetUser(ctx, address)
	if err != nil {
		return err
	}
	if user == nil {
		user = schema.NewUser(address, 0)
	} else {
		user.Balance = decrement(ctx, address, user.Balance)
	}

	return tx.SaveUser(ctx, user)
}

// creditUser is the L2 counterpart of creditOwner
func creditUser(ctx context.Context, tx store.EntityStore, address string) error {
	if domain.IsZeroAddress(address) {
		return nil
	}

	user, err := tx.GetUser(ctx, address)
	if err != nil {
		return err
	}
	if user == nil {
		user = schema.NewUser(address, 0)
	}
	user.Balance++

	return tx.SaveUser(ctx, user)
}

func decrement(ctx context.Context, address string, balance uint64) uint64 {
	if balance == 0 {
		logger.WarnCtx(ctx, "Balance already at zero, not decrementing", zap.String("address", address))
		return 0
	}
	return balance - 1
}
