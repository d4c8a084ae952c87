package store

import (
	"context"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// EntityStore is the keyed persistence layer used by the projectors.
// Every Get returns (nil, nil) when the key is absent; Save is a full-record upsert.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=EntityStore=MockEntityStore,Store=MockStore
type EntityStore interface {
	// GetPersona retrieves a persona by layer and token ID
	GetPersona(ctx context.Context, layer domain.Layer, id string) (*schema.Persona, error)
	// SavePersona upserts a persona
	SavePersona(ctx context.Context, persona *schema.Persona) error

	// GetOwner retrieves an L1 owner by address
	GetOwner(ctx context.Context, address string) (*schema.Owner, error)
	// SaveOwner upserts an L1 owner
	SaveOwner(ctx context.Context, owner *schema.Owner) error

	// GetUser retrieves an L2 user by address
	GetUser(ctx context.Context, address string) (*schema.User, error)
	// SaveUser upserts an L2 user
	SaveUser(ctx context.Context, user *schema.User) error

	// GetTransfer retrieves a transfer by layer and event ID
	GetTransfer(ctx context.Context, layer domain.Layer, id string) (*schema.Transfer, error)
	// SaveTransfer upserts a transfer
	SaveTransfer(ctx context.Context, transfer *schema.Transfer) error

	// GetAuthorization retrieves an authorization by event ID
	GetAuthorization(ctx context.Context, id string) (*schema.Authorization, error)
	// SaveAuthorization upserts an authorization
	SaveAuthorization(ctx context.Context, authorization *schema.Authorization) error
	// DeleteAuthorization removes an authorization
	DeleteAuthorization(ctx context.Context, id string) error

	// GetImpersonation retrieves an impersonation by persona:user:consumer key
	GetImpersonation(ctx context.Context, id string) (*schema.Impersonation, error)
	// SaveImpersonation upserts an impersonation
	SaveImpersonation(ctx context.Context, impersonation *schema.Impersonation) error
	// DeleteImpersonation removes an impersonation
	DeleteImpersonation(ctx context.Context, id string) error

	// IsEventProcessed reports whether the event has already been applied
	IsEventProcessed(ctx context.Context, layer domain.Layer, id string) (bool, error)
	// MarkEventProcessed records an applied event
	MarkEventProcessed(ctx context.Context, event *schema.ProcessedEvent) error

	// WithTransaction runs fn against a store bound to a single database transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTransaction(ctx context.Context, fn func(tx EntityStore) error) error
}

// Store defines the interface for database operations
type Store interface {
	EntityStore
	CursorStore

	// ListPersonasByOwner retrieves the personas currently owned by an address on a layer
	ListPersonasByOwner(ctx context.Context, layer domain.Layer, owner string, limit int, offset uint64) ([]schema.Persona, uint64, error)
	// ListTransfersByPersona retrieves the transfers of a persona ordered by block
	ListTransfersByPersona(ctx context.Context, layer domain.Layer, persona string, limit int, offset uint64) ([]schema.Transfer, uint64, error)
	// GetAuthorizationsByIDs retrieves authorizations preserving the order of ids
	GetAuthorizationsByIDs(ctx context.Context, ids []string) ([]schema.Authorization, error)
	// GetImpersonationsByIDs retrieves impersonations preserving the order of ids
	GetImpersonationsByIDs(ctx context.Context, ids []string) ([]schema.Impersonation, error)
}
