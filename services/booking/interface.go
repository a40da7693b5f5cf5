package booking

import (
	"context"
	"time"

	"devseva/models"
)

// BookingService owns the reservation lifecycle on top of the slot engine:
// creation and reschedule under the provider lock, cancellation, and the
// administrative status transitions.
type BookingService interface {
	CreateReservation(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error)
	RescheduleReservation(ctx context.Context, reservationID, userID string, start, end time.Time) (*models.Reservation, error)
	CancelReservation(ctx context.Context, reservationID, userID string) error
	UpdateReservationStatus(ctx context.Context, reservationID, status string) error
	GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error)
	ListUserReservations(ctx context.Context, userID string) ([]models.Reservation, error)
	ListProviderReservations(ctx context.Context, providerID string, from, to time.Time) ([]models.Reservation, error)
}
