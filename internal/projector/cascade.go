package projector

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/store"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// cascade removes every authorization and impersonation attached to an L2 persona.
// Each collection is walked with its own index; the persona lists end empty.
// The caller saves the persona.
func cascade(ctx context.Context, tx store.EntityStore, persona *schema.Persona) error {
	for _, authorizationID := range persona.Authorizations {
		authorization, err := tx.GetAuthorization(ctx, authorizationID)
		if err != nil {
			return err
		}
		if authorization == nil {
			logger.WarnCtx(ctx, "Cascade found a dangling authorization key",
				zap.String("personaID", persona.ID),
				zap.String("authorizationID", authorizationID))
			continue
		}

		if err := revokeUserDelegations(ctx, tx, persona, authorization); err != nil {
			return err
		}
		if err := tx.DeleteAuthorization(ctx, authorizationID); err != nil {
			return fmt.Errorf("failed to delete authorization %s: %w", authorizationID, err)
		}
	}
	persona.Authorizations = schema.NewKeys()

	// impersonations not reached through an authorization
	for _, impersonationID := range persona.Impersonations {
		impersonation, err := tx.GetImpersonation(ctx, impersonationID)
		if err != nil {
			return err
		}
		if impersonation == nil {
			logger.WarnCtx(ctx, "Cascade found a dangling impersonation key",
				zap.String("personaID", persona.ID),
				zap.String("impersonationID", impersonationID))
			continue
		}

		if err := unlinkUserImpersonation(ctx, tx, impersonation.User, impersonationID); err != nil {
			return err
		}
		if err := tx.DeleteImpersonation(ctx, impersonationID); err != nil {
			return fmt.Errorf("failed to delete impersonation %s: %w", impersonationID, err)
		}
	}
	persona.Impersonations = schema.NewKeys()

	return nil
}

// revokeUserDelegations unlinks an authorization from its user and deletes every
// impersonation of that user targeting the persona
func revokeUserDelegations(ctx context.Context, tx store.EntityStore, persona *schema.Persona, authorization *schema.Authorization) error {
	user, err := tx.GetUser(ctx, authorization.User)
	if err != nil {
		return err
	}
	if user == nil {
		logger.WarnCtx(ctx, "Cascade found an authorization without user",
			zap.String("authorizationID", authorization.ID),
			zap.String("user", authorization.User))
		return nil
	}

	user.Authorizations, _ = schema.RemoveKey(user.Authorizations, authorization.ID)

	kept := schema.NewKeys()
	for _, impersonationID := range user.Impersonations {
		impersonation, err := tx.GetImpersonation(ctx, impersonationID)
		if err != nil {
			return err
		}
		if impersonation == nil || impersonation.Persona != persona.ID {
			kept = append(kept, impersonationID)
			continue
		}

		if err := tx.DeleteImpersonation(ctx, impersonationID); err != nil {
			return fmt.Errorf("failed to delete impersonation %s: %w", impersonationID, err)
		}
		persona.Impersonations, _ = schema.RemoveKey(persona.Impersonations, impersonationID)
	}
	user.Impersonations = kept

	if err := tx.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.Address, err)
	}
	return nil
}

func unlinkUserImpersonation(ctx context.Context, tx store.EntityStore, address, impersonationID string) error {
	user, err := tx.GetUser(ctx, address)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	var removed bool
	user.Impersonations, removed = schema.RemoveKey(user.Impersonations, impersonationID)
	if !removed {
		return nil
	}
	if err := tx.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.Address, err)
	}
	return nil
}
