// File: database/repository/provider/indexes.go
package providerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the provider collection indexes at startup.
func (repo *mongoProviderRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "serviceType", Value: 1}, {Key: "status", Value: 1}},
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create provider indexes: %w", err)
	}
	return nil
}

// EnsureProviderIndexes bootstraps indexes for a freshly constructed repo.
func EnsureProviderIndexes(ctx context.Context, repo ProviderRepository) error {
	m, ok := repo.(*mongoProviderRepo)
	if !ok {
		return nil
	}
	return m.ensureIndexes(ctx)
}
