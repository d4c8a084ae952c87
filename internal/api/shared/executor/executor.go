package executor

import (
	"context"
	"fmt"

	"github.com/feral-file/persona-indexer/internal/api/shared/constants"
	"github.com/feral-file/persona-indexer/internal/api/shared/dto"
	apierrors "github.com/feral-file/persona-indexer/internal/api/shared/errors"
	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/store"
)

// Executor is the interface for the API executor.
// Lookups of a single entity return (nil, nil) when it does not exist.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetPersona retrieves a persona on a layer
	GetPersona(ctx context.Context, layer domain.Layer, id string) (*dto.PersonaResponse, error)
	// ListPersonaTransfers retrieves the transfers of a persona ordered by block
	ListPersonaTransfers(ctx context.Context, layer domain.Layer, id string, limit *int, offset *uint64) (*dto.ListResponse[dto.TransferResponse], error)

	// GetOwner retrieves an L1 owner
	GetOwner(ctx context.Context, address string) (*dto.OwnerResponse, error)
	// GetUser retrieves an L2 user
	GetUser(ctx context.Context, address string) (*dto.UserResponse, error)
	// ListHolderPersonas retrieves the personas held by an address on a layer
	ListHolderPersonas(ctx context.Context, layer domain.Layer, address string, limit *int, offset *uint64) (*dto.ListResponse[dto.PersonaResponse], error)

	// ListPersonaAuthorizations retrieves the authorizations attached to an L2 persona, or nil when it does not exist
	ListPersonaAuthorizations(ctx context.Context, id string) ([]dto.AuthorizationResponse, error)
	// ListPersonaImpersonations retrieves the impersonations attached to an L2 persona, or nil when it does not exist
	ListPersonaImpersonations(ctx context.Context, id string) ([]dto.ImpersonationResponse, error)
	// ListUserAuthorizations retrieves the authorizations granted by an L2 user, or nil when it does not exist
	ListUserAuthorizations(ctx context.Context, address string) ([]dto.AuthorizationResponse, error)
}

type executor struct {
	store store.Store
}

func NewExecutor(store store.Store) Executor {
	return &executor{store: store}
}

func pagination(limit *int, offset *uint64) (int, uint64) {
	l := constants.DEFAULT_PERSONA_LIMIT
	if limit != nil {
		l = *limit
	}
	o := constants.DEFAULT_OFFSET
	if offset != nil {
		o = *offset
	}
	return l, o
}

func (e *executor) GetPersona(ctx context.Context, layer domain.Layer, id string) (*dto.PersonaResponse, error) {
	persona, err := e.store.GetPersona(ctx, layer, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get persona: %v", err))
	}
	if persona == nil {
		return nil, nil
	}
	return dto.MapPersonaToDTO(persona), nil
}

func (e *executor) ListPersonaTransfers(ctx context.Context, layer domain.Layer, id string, limit *int, offset *uint64) (*dto.ListResponse[dto.TransferResponse], error) {
	l, o := pagination(limit, offset)

	transfers, total, err := e.store.ListTransfersByPersona(ctx, layer, id, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get transfers: %v", err))
	}

	items := make([]dto.TransferResponse, len(transfers))
	for i := range transfers {
		items[i] = *dto.MapTransferToDTO(&transfers[i])
	}

	return &dto.ListResponse[dto.TransferResponse]{
		Items:  items,
		Offset: dto.NextOffset(o, len(items), total),
		Total:  total,
	}, nil
}

func (e *executor) GetOwner(ctx context.Context, address string) (*dto.OwnerResponse, error) {
	owner, err := e.store.GetOwner(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get owner: %v", err))
	}
	if owner == nil {
		return nil, nil
	}
	return dto.MapOwnerToDTO(owner), nil
}

func (e *executor) GetUser(ctx context.Context, address string) (*dto.UserResponse, error) {
	user, err := e.store.GetUser(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, nil
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) ListHolderPersonas(ctx context.Context, layer domain.Layer, address string, limit *int, offset *uint64) (*dto.ListResponse[dto.PersonaResponse], error) {
	l, o := pagination(limit, offset)

	personas, total, err := e.store.ListPersonasByOwner(ctx, layer, address, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get personas: %v", err))
	}

	items := make([]dto.PersonaResponse, len(personas))
	for i := range personas {
		items[i] = *dto.MapPersonaToDTO(&personas[i])
	}

	return &dto.ListResponse[dto.PersonaResponse]{
		Items:  items,
		Offset: dto.NextOffset(o, len(items), total),
		Total:  total,
	}, nil
}

func (e *executor) ListPersonaAuthorizations(ctx context.Context, id string) ([]dto.AuthorizationResponse, error) {
	persona, err := e.store.GetPersona(ctx, domain.LayerL2, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get persona: %v", err))
	}
	if persona == nil {
		return nil, nil
	}
	return e.authorizations(ctx, persona.Authorizations)
}

func (e *executor) ListUserAuthorizations(ctx context.Context, address string) ([]dto.AuthorizationResponse, error) {
	user, err := e.store.GetUser(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, nil
	}
	return e.authorizations(ctx, user.Authorizations)
}

func (e *executor) authorizations(ctx context.Context, ids []string) ([]dto.AuthorizationResponse, error) {
	rows, err := e.store.GetAuthorizationsByIDs(ctx, ids)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get authorizations: %v", err))
	}

	items := make([]dto.AuthorizationResponse, len(rows))
	for i := range rows {
		items[i] = *dto.MapAuthorizationToDTO(&rows[i])
	}
	return items, nil
}

func (e *executor) ListPersonaImpersonations(ctx context.Context, id string) ([]dto.ImpersonationResponse, error) {
	persona, err := e.store.GetPersona(ctx, domain.LayerL2, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get persona: %v", err))
	}
	if persona == nil {
		return nil, nil
	}

	rows, err := e.store.GetImpersonationsByIDs(ctx, persona.Impersonations)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get impersonations: %v", err))
	}

	items := make([]dto.ImpersonationResponse, len(rows))
	for i := range rows {
		items[i] = *dto.MapImpersonationToDTO(&rows[i])
	}
	return items, nil
}
