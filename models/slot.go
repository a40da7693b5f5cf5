package models

import "time"

// Slot is a concrete bookable interval derived from a working window.
// Ephemeral: computed fresh on every availability request, never persisted.
type Slot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration"` // minutes
}

// BookingCheck is a caller-proposed interval to validate against a provider's
// schedule and existing reservations. ExcludeReservationID lets an edit to an
// existing reservation skip conflict with itself.
type BookingCheck struct {
	ProviderID           string    `json:"providerId" binding:"required"`
	Start                time.Time `json:"start" binding:"required"`
	End                  time.Time `json:"end" binding:"required"`
	ExcludeReservationID string    `json:"excludeReservationId,omitempty"`
}

// BookableResult is the validator's verdict. A false Bookable with a Reason
// is an ordinary domain outcome, not an error.
type BookableResult struct {
	Bookable bool   `json:"bookable"`
	Reason   string `json:"reason,omitempty"`
}
