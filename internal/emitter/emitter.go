package emitter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/messaging"
	"github.com/feral-file/persona-indexer/internal/store"
)

// Config holds the configuration for the event emitter
type Config struct {
	ChainID         domain.Chain
	Layer           domain.Layer
	ContractAddress string
	StartBlock      uint64        // First block to read when no cursor is stored (contract deployment block)
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

// Emitter handles persona event subscription and publishing to NATS
type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	cursors    store.CursorStore
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	cursors store.CursorStore,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		cursors:    cursors,
		config:     cfg,
		clock:      clock,
	}
}

func (e *emitter) cursorName() string {
	return store.CursorName(e.config.Layer.String(), domain.NormalizeAddress(e.config.ContractAddress))
}

// startBlock resumes after the stored cursor, then falls back to the configured
// start block and finally to the chain head
func (e *emitter) startBlock(ctx context.Context) (uint64, error) {
	fields := []zap.Field{
		zap.String("chain", string(e.config.ChainID)),
		zap.String("layer", e.config.Layer.String()),
	}

	lastBlock, err := e.cursors.GetBlockCursor(ctx, e.cursorName())
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	switch {
	case lastBlock > 0:
		logger.InfoCtx(ctx, "Resuming from last processed block", append(fields, zap.Uint64("block", lastBlock+1))...)
		return lastBlock + 1, nil
	case e.config.StartBlock > 0:
		logger.InfoCtx(ctx, "Starting from configured block", append(fields, zap.Uint64("block", e.config.StartBlock))...)
		return e.config.StartBlock, nil
	}

	latestBlock, err := e.subscriber.GetLatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	logger.WarnCtx(ctx, "No cursor or start block, starting from latest block; earlier history is skipped",
		append(fields, zap.Uint64("block", latestBlock))...)
	return latestBlock, nil
}

// Run starts the event emitter
func (e *emitter) Run(ctx context.Context) error {
	startBlock, err := e.startBlock(ctx)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Starting event subscription",
		zap.String("chain", string(e.config.ChainID)),
		zap.String("layer", e.config.Layer.String()),
		zap.String("contract", e.config.ContractAddress))

	lastSavedBlock := uint64(0)
	lastSaveTime := e.clock.Now()

	handler := func(event *domain.PersonaEvent) error {
		if err := e.publisher.PublishEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.ID(), err)
		}

		// Every log of the blocks before this one has been handed over. The current
		// block is only complete once a later block shows up, so a restart replays it.
		if event.BlockNumber == 0 {
			return nil
		}
		completed := event.BlockNumber - 1
		if completed <= lastSavedBlock {
			return nil
		}

		// Save cursor periodically (every N blocks or N seconds)
		shouldSave := completed-lastSavedBlock >= e.config.CursorSaveFreq ||
			e.clock.Since(lastSaveTime) >= e.config.CursorSaveDelay

		if shouldSave {
			if err := e.cursors.SetBlockCursor(ctx, e.cursorName(), completed); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to save block cursor"), zap.Uint64("block", completed))
			} else {
				lastSavedBlock = completed
				lastSaveTime = e.clock.Now()
			}
		}

		return nil
	}

	err = e.subscriber.SubscribeEvents(ctx, startBlock, handler)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err == nil {
		return errors.New("subscription ended unexpectedly")
	}
	return err
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
	e.publisher.Close()
}
