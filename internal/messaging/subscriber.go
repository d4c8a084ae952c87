package messaging

import (
	"context"

	"github.com/feral-file/persona-indexer/internal/domain"
)

// EventHandler is called for every persona event, in (block, log index) order.
// A returned error stops delivery.
type EventHandler func(event *domain.PersonaEvent) error

// Subscriber defines the common interface for subscribing to persona events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents delivers events from fromBlock onwards to handler until ctx is done,
	// the handler fails or the subscription cannot be re-established
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
