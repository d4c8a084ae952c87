package projector

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/store"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// handleTransfer applies an L1 Persona Transfer: owner balances, persona ownership
// and the transfer log. A transfer that was already recorded is skipped entirely.
func (p *projector) handleTransfer(ctx context.Context, tx store.EntityStore, e *domain.PersonaEvent) error {
	transferID := e.ID()
	existing, err := tx.GetTransfer(ctx, domain.LayerL1, transferID)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.DebugCtx(ctx, "Transfer already applied, skipping", zap.String("transferID", transferID))
		return nil
	}

	from := domain.NormalizeAddress(e.From)
	to := domain.NormalizeAddress(e.To)

	if err := debitOwner(ctx, tx, from); err != nil {
		return fmt.Errorf("failed to debit owner %s: %w", from, err)
	}
	if err := creditOwner(ctx, tx, to); err != nil {
		return fmt.Errorf("failed to credit owner %s: %w", to, err)
	}

	persona, err := tx.GetPersona(ctx, domain.LayerL1, e.PersonaID)
	if err != nil {
		return err
	}
	if persona == nil {
		persona = schema.NewPersona(domain.LayerL1, e.PersonaID)

		uri, err := p.reader.TokenURI(ctx, e.ContractAddress, e.PersonaID, e.BlockNumber)
		switch {
		case err == nil:
			persona.URI = &uri
		case p.config.TolerateURIFailure:
			logger.WarnCtx(ctx, "Failed to read token URI, leaving it unset",
				zap.String("personaID", e.PersonaID),
				zap.Uint64("blockNumber", e.BlockNumber),
				zap.Error(err))
		default:
			return fmt.Errorf("%w: tokenURI(%s): %w", domain.ErrContractReadFailed, e.PersonaID, err)
		}
	}
	persona.Owner = to

	if err := tx.SavePersona(ctx, persona); err != nil {
		return fmt.Errorf("failed to save persona %s: %w", e.PersonaID, err)
	}

	transfer := &schema.Transfer{
		Layer:           domain.LayerL1,
		ID:              transferID,
		Persona:         e.PersonaID,
		From:            from,
		To:              to,
		Timestamp:       e.Timestamp,
		Block:           e.BlockNumber,
		TransactionHash: e.TxHash,
	}
	if err := tx.SaveTransfer(ctx, transfer); err != nil {
		return fmt.Errorf("failed to save transfer %s: %w", transferID, err)
	}

	logger.InfoCtx(ctx, "Persona transferred",
		zap.String("personaID", e.PersonaID),
		zap.String("from", from),
		zap.String("to", to))
	return nil
}

// handleMetadataGeneratorChanged re-reads the URI of every persona minted so far.
// The backfill is all-or-nothing: a missing persona or a failed read aborts it.
func (p *projector) handleMetadataGeneratorChanged(ctx context.Context, tx store.EntityStore, e *domain.PersonaEvent) error {
	current, err := p.reader.CurrentPersonaID(ctx, e.ContractAddress, e.BlockNumber)
	if err != nil {
		logger.WarnCtx(ctx, "currentPersonaId reverted, skipping URI backfill",
			zap.String("generator", e.Generator),
			zap.Uint64("blockNumber", e.BlockNumber),
			zap.Error(err))
		return nil
	}
	if current.Sign() < 0 || !current.IsUint64() {
		return fmt.Errorf("%w: currentPersonaId out of range: %s", domain.ErrContractReadFailed, current)
	}

	upper := current.Uint64()
	first := p.config.FirstPersonaID
	if upper <= first {
		logger.InfoCtx(ctx, "No personas to backfill", zap.Uint64("currentPersonaID", upper))
		return nil
	}

	personas := make([]*schema.Persona, 0, upper-first)
	for id := first; id < upper; id++ {
		personaID := strconv.FormatUint(id, 10)
		persona, err := tx.GetPersona(ctx, domain.LayerL1, personaID)
		if err != nil {
			return err
		}
		if persona == nil {
			return fmt.Errorf("%w: persona %s is below currentPersonaId %d", domain.ErrPersonaNotFound, personaID, upper)
		}
		personas = append(personas, persona)
	}

	uris, err := p.readTokenURIs(ctx, e.ContractAddress, personas, e.BlockNumber)
	if err != nil {
		return err
	}

	for i, persona := range personas {
		uri := uris[i]
		persona.URI = &uri
		if err := tx.SavePersona(ctx, persona); err != nil {
			return fmt.Errorf("failed to save persona %s: %w", persona.ID, err)
		}
	}

	logger.InfoCtx(ctx, "Persona URIs backfilled",
		zap.String("generator", e.Generator),
		zap.Uint64("from", first),
		zap.Uint64("to", upper))
	return nil
}

// readTokenURIs fetches the URIs of personas through a bounded pool.
// Results are returned in the order of personas.
func (p *projector) readTokenURIs(ctx context.Context, contractAddress string, personas []*schema.Persona, blockNumber uint64) ([]string, error) {
	pool := pond.NewResultPool[string](p.config.BackfillConcurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, persona := range personas {
		personaID := persona.ID
		group.SubmitErr(func() (string, error) {
			uri, err := p.reader.TokenURI(ctx, contractAddress, personaID, blockNumber)
			if err != nil {
				return "", fmt.Errorf("%w: tokenURI(%s): %w", domain.ErrContractReadFailed, personaID, err)
			}
			return uri, nil
		})
	}

	return group.Wait()
}
