package logger

import (
	"context"
	"strconv"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/domain"
)

// EventFields returns the structured fields identifying a persona event
func EventFields(e *domain.PersonaEvent) []zap.Field {
	if e == nil {
		return nil
	}
	return []zap.Field{
		zap.String("layer", e.Layer.String()),
		zap.String("kind", string(e.Kind)),
		zap.String("eventID", e.ID()),
		zap.Uint64("blockNumber", e.BlockNumber),
		zap.String("personaID", e.PersonaID),
	}
}

// WithEvent returns a context carrying a sentry hub scoped to the event,
// so errors logged through the *Ctx helpers are tagged with it
func WithEvent(ctx context.Context, e *domain.PersonaEvent) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if e == nil || sentryClient == nil {
		return ctx
	}

	hub := sentry.CurrentHub().Clone()
	hub.BindClient(sentryClient)
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("layer", e.Layer.String())
		scope.SetTag("kind", string(e.Kind))
		scope.SetTag("chain", string(e.Chain))
		scope.SetContext("event", sentry.Context{
			"id":          e.ID(),
			"blockNumber": strconv.FormatUint(e.BlockNumber, 10),
			"personaID":   e.PersonaID,
		})
	})
	return sentry.SetHubOnContext(ctx, hub)
}
