// File: database/repository/reservation/reservation_mongo.go
package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devseva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no reservation matches the given id.
var ErrNotFound = errors.New("reservation not found")

const opTimeout = 5 * time.Second

func (repo *mongoReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (repo *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var reservation models.Reservation
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	return &reservation, nil
}

// FetchActiveInRange returns the provider's non-terminal reservations whose
// interval overlaps [from, to). The overlap filter is the canonical
// half-open test expressed as a bson query.
func (repo *mongoReservationRepo) FetchActiveInRange(ctx context.Context, providerID string, from, to time.Time, excludeID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"status":     bson.M{"$nin": models.TerminalReservationStatuses},
		"start":      bson.M{"$lt": to},
		"end":        bson.M{"$gt": from},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (repo *mongoReservationRepo) UpdateInterval(ctx context.Context, id string, start, end time.Time) error {
	return repo.setFields(ctx, id, bson.M{"start": start, "end": end})
}

func (repo *mongoReservationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return repo.setFields(ctx, id, bson.M{"status": status})
}

func (repo *mongoReservationRepo) ListByProvider(ctx context.Context, providerID string, from, to time.Time) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"start":      bson.M{"$lt": to},
		"end":        bson.M{"$gt": from},
	}
	return repo.findAll(ctx, filter)
}

func (repo *mongoReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return repo.findAll(ctx, bson.M{"userId": userID})
}

func (repo *mongoReservationRepo) findAll(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (repo *mongoReservationRepo) setFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
