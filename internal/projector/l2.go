package projector

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/store"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// handleChangeOwner applies a bridged ownership change on the L2 mirror.
// An existing persona loses its whole delegation graph.
func (p *projector) handleChangeOwner(ctx context.Context, tx store.EntityStore, e *domain.PersonaEvent) error {
	transferID := e.ID()
	existing, err := tx.GetTransfer(ctx, domain.LayerL2, transferID)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.DebugCtx(ctx, "Bridge change owner already applied, skipping", zap.String("transferID", transferID))
		return nil
	}

	from := domain.NormalizeAddress(e.From)
	to := domain.NormalizeAddress(e.To)

	if err := debitUser(ctx, tx, from); err != nil {
		return fmt.Errorf("failed to debit user %s: %w", from, err)
	}
	if err := creditUser(ctx, tx, to); err != nil {
		return fmt.Errorf("failed to credit user %s: %w", to, err)
	}

	persona, err := tx.GetPersona(ctx, domain.LayerL2, e.PersonaID)
	if err != nil {
		return err
	}
	if persona == nil {
		persona = schema.NewPersona(domain.LayerL2, e.PersonaID)
	} else if err := cascade(ctx, tx, persona); err != nil {
		return fmt.Errorf("failed to reset delegations of persona %s: %w", e.PersonaID, err)
	}
	persona.Owner = to
	setNonce(persona, e.Nonce)

	if err := tx.SavePersona(ctx, persona); err != nil {
		return fmt.Errorf("failed to save persona %s: %w", e.PersonaID, err)
	}

	transfer := &schema.Transfer{
		Layer:           domain.LayerL2,
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

	logger.InfoCtx(ctx, "Mirrored persona changed owner",
		zap.String("personaID", e.PersonaID),
		zap.String("from", from),
		zap.String("to", to),
		zap.String("nonce", e.Nonce))
	return nil
}

// handleNuke clears the delegation graph of a persona without touching its owner
func (p *projector) handleNuke(ctx context.Context, tx store.EntityStore, e *domain.PersonaEvent) error {
	persona, err := tx.GetPersona(ctx, domain.LayerL2, e.PersonaID)
	if err != nil {
		return err
	}
	if persona == nil {
		return fmt.Errorf("%w: nuke on persona %s", domain.ErrPersonaNotFound, e.PersonaID)
	}

	if err := cascade(ctx, tx, persona); err != nil {
		return fmt.Errorf("failed to reset delegations of persona %s: %w", e.PersonaID, err)
	}
	setNonce(persona, e.Nonce)

	if err := tx.SavePersona(ctx, persona); err != nil {
		return fmt.Errorf("failed to save persona %s: %w", e.PersonaID, err)
	}

	logger.InfoCtx(ctx, "Persona nuked", zap.String("personaID", e.PersonaID), zap.String("nonce", e.Nonce))
	return nil
}

// handleImpersonate records an impersonation; the same triple is stored once
func (p *projector) handleImpersonate(ctx context.Context, tx store.EntityStore, e *domain.PersonaEvent) error {
	user, consumer := domain.NormalizeAddress(e.User), domain.NormalizeAddress(e.Consumer)
	impersonationID := domain.ImpersonationID(e.PersonaID, user, consumer)

	existing, err := tx.GetImpersonation(ctx, impersonationID)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.DebugCtx(ctx, "Impersonation already recorded", zap.String("impersonationID", impersonationID))
		return nil
	}

	persona, account, err := loadDelegationParties(ctx, tx, e.PersonaID, user)
	if err != nil {
		return err
	}

	impersonation := &schema.Impersonation{
		ID:       impersonationID,
		Persona:  e.PersonaID,
		User:     user,
		Consumer: consumer,
	}
	if err := tx.SaveImpersonation(ctx, impersonation); err != nil {
		return fmt.Errorf("failed to save impersonation %s: %w", impersonationID, err)
	}

	account.Impersonations = append(account.Impersonations, impersonationID)
	persona.Impersonations = append(persona.Impersonations, impersonationID)
	if err := saveDelegationParties(ctx, tx, persona, account); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Impersonation started", zap.String("impersonationID", impersonationID))
	return nil
}

// handleDeimpersonate removes an impersonation; an unknown one is a logged anomaly
func (p *projector) handleDeimpersonate(ctx context.Context, tx store.EntityStore, e *domain.PersonaEvent) error {
	user, consumer := domain.NormalizeAddress(e.User), domain.NormalizeAddress(e.Consumer)
	impersonationID := domain.ImpersonationID(e.PersonaID, user, consumer)

	existing, err := tx.GetImpersonation(ctx, impersonationID)
	if err != nil {
		return err
	}
	if existing == nil {
		logger.WarnCtx(ctx, "Deimpersonate on a non-existent impersonation", zap.String("impersonationID", impersonationID))
		return nil
	}

	if err := tx.DeleteImpersonation(ctx, impersonationID); err != nil {
		return fmt.Errorf("failed to delete impersonation %s: %w", impersonationID, err)
	}
	if err := unlinkUserImpersonation(ctx, tx, user, impersonationID); err != nil {
		return err
	}

	persona, err := tx.GetPersona(ctx, domain.LayerL2, e.PersonaID)
	if err != nil {
		return err
	}
	if persona != nil {
		var removed bool
		if persona.Impersonations, removed = schema.RemoveKey(persona.Impersonations, impersonationID); removed {
			if err := tx.SavePersona(ctx, persona); err != nil {
				return fmt.Errorf("failed to save persona %s: %w", e.PersonaID, err)
			}
		}
	}

	logger.InfoCtx(ctx, "Impersonation ended", zap.String("impersonationID", impersonationID))
	return nil
}

// handleAuthorize records an authorization and links it to its user and persona.
// Replaying the same log is a no-op.
func (p *projector) handleAuthorize(ctx context.Context, tx store.EntityStore, e *domain.PersonaEvent) error {
	authorizationID := e.ID()
	existing, err := tx.GetAuthorization(ctx, authorizationID)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.DebugCtx(ctx, "Authorization already applied, skipping", zap.String("authorizationID", authorizationID))
		return nil
	}

	user, consumer := domain.NormalizeAddress(e.User), domain.NormalizeAddress(e.Consumer)
	persona, account, err := loadDelegationParties(ctx, tx, e.PersonaID, user)
	if err != nil {
		return err
	}

	authorization := &schema.Authorization{
		ID:           authorizationID,
		Persona:      e.PersonaID,
		User:         user,
		Consumer:     consumer,
		FnSignatures: uniqueSignatures(e.FnSignatures),
	}
	if err := tx.SaveAuthorization(ctx, authorization); err != nil {
		return fmt.Errorf("failed to save authorization %s: %w", authorizationID, err)
	}

	account.Authorizations = append(account.Authorizations, authorizationID)
	persona.Authorizations = append(persona.Authorizations, authorizationID)
	if err := saveDelegationParties(ctx, tx, persona, account); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Authorization granted",
		zap.String("authorizationID", authorizationID),
		zap.String("user", user),
		zap.String("consumer", consumer),
		zap.Strings("fnSignatures", authorization.FnSignatures))
	return nil
}

// handleDeauthorize drops the first persona authorization matching user/consumer
// and the first matching impersonation from the user and persona lists.
// The authorization record itself is kept.
func (p *projector) handleDeauthorize(ctx context.Context, tx store.EntityStore, e *domain.PersonaEvent) error {
	user, consumer := domain.NormalizeAddress(e.User), domain.NormalizeAddress(e.Consumer)
	persona, account, err := loadDelegationParties(ctx, tx, e.PersonaID, user)
	if err != nil {
		return err
	}

	for i, authorizationID := range persona.Authorizations {
		authorization, err := tx.GetAuthorization(ctx, authorizationID)
		if err != nil {
			return err
		}
		if authorization != nil && authorization.User == user && authorization.Consumer == consumer {
			persona.Authorizations = schema.RemoveKeyAt(persona.Authorizations, i)
			break
		}
	}

	var userMatch, personaMatch string
	account.Impersonations, userMatch, err = removeFirstImpersonation(ctx, tx, account.Impersonations, e.PersonaID, user, consumer)
	if err != nil {
		return err
	}
	persona.Impersonations, personaMatch, err = removeFirstImpersonation(ctx, tx, persona.Impersonations, e.PersonaID, user, consumer)
	if err != nil {
		return err
	}

	// both scans match on the full triple, so any hit is the same impersonation key
	if impersonationID := firstNonEmpty(userMatch, personaMatch); impersonationID != "" {
		if err := tx.DeleteImpersonation(ctx, impersonationID); err != nil {
			return fmt.Errorf("failed to delete impersonation %s: %w", impersonationID, err)
		}
	}

	if err := saveDelegationParties(ctx, tx, persona, account); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Authorization revoked",
		zap.String("personaID", e.PersonaID),
		zap.String("user", user),
		zap.String("consumer", consumer))
	return nil
}

// removeFirstImpersonation removes the first key whose impersonation matches the triple
// and returns the new list together with the removed key ("" when none matched)
func removeFirstImpersonation(ctx context.Context, tx store.EntityStore, keys schema.Keys, personaID, user, consumer string) (schema.Keys, string, error) {
	for i, impersonationID := range keys {
		impersonation, err := tx.GetImpersonation(ctx, impersonationID)
		if err != nil {
			return keys, "", err
		}
		if impersonation != nil && impersonation.Matches(personaID, user, consumer) {
			return schema.RemoveKeyAt(keys, i), impersonationID, nil
		}
	}
	return keys, "", nil
}

// loadDelegationParties loads the L2 persona and user a delegation event refers to.
// Both must already exist.
func loadDelegationParties(ctx context.Context, tx store.EntityStore, personaID, address string) (*schema.Persona, *schema.User, error) {
	persona, err := tx.GetPersona(ctx, domain.LayerL2, personaID)
	if err != nil {
		return nil, nil, err
	}
	if persona == nil {
		return nil, nil, fmt.Errorf("%w: persona %s", domain.ErrPersonaNotFound, personaID)
	}

	user, err := tx.GetUser(ctx, address)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, fmt.Errorf("%w: user %s", domain.ErrUserNotFound, address)
	}

	return persona, user, nil
}

func saveDelegationParties(ctx context.Context, tx store.EntityStore, persona *schema.Persona, user *schema.User) error {
	if err := tx.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.Address, err)
	}
	if err := tx.SavePersona(ctx, persona); err != nil {
		return fmt.Errorf("failed to save persona %s: %w", persona.ID, err)
	}
	return nil
}

// uniqueSignatures drops repeated selectors, keeping first-seen order
func uniqueSignatures(signatures []string) schema.Keys {
	seen := mapset.NewThreadUnsafeSetWithSize[string](len(signatures))
	out := schema.NewKeys()
	for _, signature := range signatures {
		if seen.Add(signature) {
			out = append(out, signature)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func setNonce(persona *schema.Persona, nonce string) {
	if nonce == "" {
		return
	}
	persona.LastBridgeNonce = &nonce
}
