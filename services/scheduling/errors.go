package scheduling

import "errors"

// Input errors. These reject the call outright, unlike domain outcomes which
// come back as a BookableResult with a reason.
var (
	ErrInvalidRange    = errors.New("date range end precedes start")
	ErrInvalidDuration = errors.New("session duration must be positive")
	ErrInvalidInterval = errors.New("interval end must be after start")
	ErrUnknownProvider = errors.New("provider not found")
)

// Rejection reasons returned in BookableResult. Callers surface these as-is.
const (
	ReasonPast                = "in the past"
	ReasonProviderUnavailable = "provider unavailable"
	ReasonOutsideWorkingHours = "outside working hours"
	ReasonAlreadyBooked       = "time slot already booked"
)
