package bridge

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/messaging"
	"github.com/feral-file/persona-indexer/internal/projector"
)

type directPublisher struct {
	projector projector.Projector
}

// NewDirectPublisher returns a publisher that projects every event in process,
// so an emitter can drive the projector without a message broker
func NewDirectPublisher(p projector.Projector) messaging.Publisher {
	return &directPublisher{projector: p}
}

// PublishEvent projects the event. Events that cannot be projected are dropped
// with a warning; fatal errors are returned and stop the emitter.
func (d *directPublisher) PublishEvent(ctx context.Context, event *domain.PersonaEvent) error {
	err := d.projector.Handle(ctx, event)
	if err != nil && !domain.IsFatal(err) {
		logger.WarnCtx(ctx, "Dropping event that cannot be projected", append(logger.EventFields(event), zap.Error(err))...)
		return nil
	}
	return err
}

func (d *directPublisher) Close() {}
