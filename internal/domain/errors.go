package domain

import "errors"

var (
	// ErrSubscriptionFailed is returned when subscription to events fails
	ErrSubscriptionFailed = errors.New("subscription failed")

	// ErrInvalidEvent is returned when an event is missing parameters required by its kind
	ErrInvalidEvent = errors.New("invalid event")

	// ErrUnknownEventKind is returned when no handler is registered for a layer/kind pair
	ErrUnknownEventKind = errors.New("unknown event kind")

	// ErrPersonaNotFound is returned when an event references a persona the store has never seen
	ErrPersonaNotFound = errors.New("persona not found")

	// ErrUserNotFound is returned when an event references a user the store has never seen
	ErrUserNotFound = errors.New("user not found")

	// ErrContractReadFailed is returned when a mandatory contract read reverts or fails
	ErrContractReadFailed = errors.New("contract read failed")
)

// IsFatal reports whether err must halt the event stream.
// Malformed events are dropped by the consumer; every other handler error is a
// precondition violation or a failed mandatory read.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrInvalidEvent)
}
