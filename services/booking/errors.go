package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the reservation does not exist.
	ErrNotFound = errors.New("reservation not found")
	// ErrForbidden is returned when a caller acts on a reservation they do
	// not own.
	ErrForbidden = errors.New("reservation belongs to another user")
	// ErrLockBusy is returned when the provider's booking lock could not be
	// acquired; callers may retry.
	ErrLockBusy = errors.New("provider is processing another booking, try again")
)

// ConflictError reports a domain rejection from the overlap validator. The
// reason is one of the scheduling package's rejection reasons.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking rejected: %s", e.Reason)
}

// TransitionError reports an illegal reservation status transition.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition reservation from %s to %s", e.From, e.To)
}
