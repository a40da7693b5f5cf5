// File: database/repository/provider/provider_mongo.go
package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devseva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no provider matches the given id.
var ErrNotFound = errors.New("provider not found")

const opTimeout = 5 * time.Second

func (repo *mongoProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	provider.CreatedAt = now
	provider.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to insert provider: %w", err)
	}
	return nil
}

func (repo *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var provider models.Provider
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}
	return &provider, nil
}

func (repo *mongoProviderRepo) UpdateWeeklySchedule(ctx context.Context, id string, schedule models.WeeklySchedule) error {
	return repo.setFields(ctx, id, bson.M{"weeklySchedule": schedule})
}

func (repo *mongoProviderRepo) UpdateSessionPolicy(ctx context.Context, id string, policy models.SessionPolicy) error {
	return repo.setFields(ctx, id, bson.M{"sessionPolicy": policy})
}

func (repo *mongoProviderRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	return repo.setFields(ctx, id, bson.M{"available": available})
}

func (repo *mongoProviderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return repo.setFields(ctx, id, bson.M{"status": status})
}

func (repo *mongoProviderRepo) setFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update provider %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
