// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"devseva/database"
	"devseva/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository is the persistence contract for provider profiles. The
// scheduling engine only reads; schedule and policy mutations go through the
// explicit update methods.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	UpdateWeeklySchedule(ctx context.Context, id string, schedule models.WeeklySchedule) error
	UpdateSessionPolicy(ctx context.Context, id string, policy models.SessionPolicy) error
	SetAvailability(ctx context.Context, id string, available bool) error
	UpdateStatus(ctx context.Context, id string, status string) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a MongoDB-backed ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	return &mongoProviderRepo{
		coll: database.DB().Collection("providers"),
	}
}
