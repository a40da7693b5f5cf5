// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"time"

	"devseva/database"
	"devseva/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository is the store adapter consulted by the scheduling
// engine and the booking flow. FetchActiveInRange is the engine's query
// contract: all non-terminal reservations for a provider whose interval
// overlaps [from, to), optionally skipping one reservation id (used when
// validating an edit so the reservation does not conflict with itself).
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	FetchActiveInRange(ctx context.Context, providerID string, from, to time.Time, excludeID string) ([]models.Reservation, error)
	UpdateInterval(ctx context.Context, id string, start, end time.Time) error
	UpdateStatus(ctx context.Context, id string, status string) error
	ListByProvider(ctx context.Context, providerID string, from, to time.Time) ([]models.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a MongoDB-backed ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	return &mongoReservationRepo{
		coll: database.DB().Collection("reservations"),
	}
}
