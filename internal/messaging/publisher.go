package messaging

import (
	"context"

	"github.com/feral-file/persona-indexer/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a persona event to the message broker
	PublishEvent(ctx context.Context, event *domain.PersonaEvent) error
	// Close closes the connection
	Close()
}
