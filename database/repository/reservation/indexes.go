// File: database/repository/reservation/indexes.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"devseva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the reservation collection indexes. The partial
// unique index on (providerId, start) over active statuses backstops the
// booking lock: two concurrent inserts for the exact same start can never
// both land.
func (repo *mongoReservationRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	activeStatuses := []string{
		models.ReservationScheduled,
		models.ReservationConfirmed,
		models.ReservationInProgress,
	}

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "start", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "start", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "start", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": activeStatuses}}),
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}

// EnsureReservationIndexes bootstraps indexes for a freshly constructed repo.
func EnsureReservationIndexes(ctx context.Context, repo ReservationRepository) error {
	m, ok := repo.(*mongoReservationRepo)
	if !ok {
		return nil
	}
	return m.ensureIndexes(ctx)
}
