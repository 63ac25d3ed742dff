package collab

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the collaborator service is unreachable.
	ErrUnavailable = errors.New("collaborator service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("collaborator request timed out")

	// ErrRetryExhausted indicates all retry attempts failed.
	ErrRetryExhausted = errors.New("collaborator retry attempts exhausted")
)

// BookingDeclinedError is the booking service saying no. Retryable declines
// (slot taken, rate limited) are worth re-attempting with different input;
// the rest are final.
type BookingDeclinedError struct {
	Code      string
	Message   string
	Retryable bool
}

func (e *BookingDeclinedError) Error() string {
	return fmt.Sprintf("booking declined (%s): %s", e.Code, e.Message)
}
