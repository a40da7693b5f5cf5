package models

import "time"

// Reservation statuses. Cancelled and rejected are terminal; reservations in
// any other status count against a provider's availability.
const (
	ReservationScheduled  = "scheduled"
	ReservationConfirmed  = "confirmed"
	ReservationInProgress = "in-progress"
	ReservationCompleted  = "completed"
	ReservationCancelled  = "cancelled"
	ReservationRejected   = "rejected"
)

// TerminalReservationStatuses are the statuses excluded from overlap checks.
var TerminalReservationStatuses = []string{ReservationCancelled, ReservationRejected}

// IsActiveReservationStatus reports whether a status participates in
// conflict detection.
func IsActiveReservationStatus(status string) bool {
	for _, s := range TerminalReservationStatuses {
		if s == status {
			return false
		}
	}
	return true
}

// Reservation is a confirmed hold on a provider's time. Start and End are
// absolute instants; they never change after creation except through the
// explicit reschedule flow.
type Reservation struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	UserID      string    `bson:"userId" json:"userId"`
	ServiceName string    `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Start       time.Time `bson:"start" json:"start"`
	End         time.Time `bson:"end" json:"end"`
	Status      string    `bson:"status" json:"status"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReservationRequest is the payload for creating a new reservation.
type ReservationRequest struct {
	ProviderID  string    `json:"providerId" binding:"required"`
	UserID      string    `json:"-"`
	ServiceName string    `json:"serviceName,omitempty"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Notes       string    `json:"notes,omitempty"`
}
