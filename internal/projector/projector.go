package projector

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/store"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// Config holds projector behaviour switches
type Config struct {
	// TolerateURIFailure leaves the URI unset instead of failing when a first-seen
	// persona's tokenURI read reverts
	TolerateURIFailure bool
	// FirstPersonaID is the lowest persona ID covered by a metadata backfill
	FirstPersonaID uint64
	// BackfillConcurrency bounds the tokenURI reads in flight during a backfill
	BackfillConcurrency int
}

// Projector applies persona events to the entity store
//
//go:generate mockgen -source=projector.go -destination=../mocks/projector.go -package=mocks -mock_names=Projector=MockProjector
type Projector interface {
	// Handle applies a single event atomically. Errors are wrapped with the event ID
	// and classified by domain.IsFatal.
	Handle(ctx context.Context, event *domain.PersonaEvent) error
}

type handlerFunc func(ctx context.Context, tx store.EntityStore, event *domain.PersonaEvent) error

type projector struct {
	config   Config
	store    store.EntityStore
	reader   PersonaReader
	handlers map[domain.EventKind]handlerFunc
}

// New creates a projector over the given store and contract reader
func New(cfg Config, st store.EntityStore, reader PersonaReader) Projector {
	if cfg.BackfillConcurrency <= 0 {
		cfg.BackfillConcurrency = 1
	}

	p := &projector{
		config: cfg,
		store:  st,
		reader: reader,
	}
	p.handlers = map[domain.EventKind]handlerFunc{
		domain.EventKindTransfer:                 p.handleTransfer,
		domain.EventKindMetadataGeneratorChanged: p.handleMetadataGeneratorChanged,
		domain.EventKindBridgeChangeOwner:        p.handleChangeOwner,
		domain.EventKindBridgeNuke:               p.handleNuke,
		domain.EventKindImpersonate:              p.handleImpersonate,
		domain.EventKindDeimpersonate:            p.handleDeimpersonate,
		domain.EventKindAuthorize:                p.handleAuthorize,
		domain.EventKindDeauthorize:              p.handleDeauthorize,
	}
	return p
}

// Handle validates the event, then routes it to its handler inside one store transaction.
// The transaction also records the event ID, so an event delivered twice is applied once.
func (p *projector) Handle(ctx context.Context, event *domain.PersonaEvent) error {
	if event == nil {
		return fmt.Errorf("%w: nil event", domain.ErrInvalidEvent)
	}

	handler, ok := p.handlers[event.Kind]
	if !ok || event.Kind.Layer() != event.Layer {
		return fmt.Errorf("%w: %s/%s", domain.ErrUnknownEventKind, event.Layer, event.Kind)
	}
	if !event.Valid() {
		return fmt.Errorf("%w: %s event %s is missing parameters", domain.ErrInvalidEvent, event.Kind, event.ID())
	}

	ctx = logger.WithEvent(ctx, event)
	logger.DebugCtx(ctx, "Applying event", logger.EventFields(event)...)

	replayed := false
	err := p.store.WithTransaction(ctx, func(tx store.EntityStore) error {
		processed, err := tx.IsEventProcessed(ctx, event.Layer, event.ID())
		if err != nil {
			return err
		}
		if processed {
			replayed = true
			return nil
		}

		if err := handler(ctx, tx, event); err != nil {
			return err
		}

		return tx.MarkEventProcessed(ctx, &schema.ProcessedEvent{
			Layer: event.Layer,
			ID:    event.ID(),
			Kind:  event.Kind,
			Block: event.BlockNumber,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to apply %s event %s: %w", event.Kind, event.ID(), err)
	}

	if replayed {
		logger.DebugCtx(ctx, "Event already applied, skipping", logger.EventFields(event)...)
		return nil
	}

	logger.DebugCtx(ctx, "Event applied",
		zap.String("kind", string(event.Kind)),
		zap.String("eventID", event.ID()))
	return nil
}
