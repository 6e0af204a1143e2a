// internal/repository/mongo/plan_repo.go
package mongo

import (
	"context"
	"errors"
	"fitsync/fitsync-ai/internal/domain"
	"fitsync/fitsync-ai/internal/repository"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoPlanRepository implements repository.PlanRepository
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a plan repository on the given collection.
func NewMongoPlanRepository(collection *mongo.Collection) repository.PlanRepository {
	return &mongoPlanRepository{collection: collection}
}

// Insert stores a record as {user_data, fitness_plan, timestamp}.
func (r *mongoPlanRepository) Insert(ctx context.Context, record *domain.PlanRecord) (primitive.ObjectID, error) {
	if record.Timestamp.IsZero() {
		return primitive.NilObjectID, errors.New("plan record requires a timestamp")
	}
	record.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert plan: %w", err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted plan ID")
	}
	log.Debug().Str("id", insertedID.Hex()).Interface("user_data", record.UserData).Msg("Document inserted")
	return insertedID, nil
}

// ListRecent returns the newest records first.
func (r *mongoPlanRepository) ListRecent(ctx context.Context, limit int64) ([]domain.PlanRecord, error) {
	if limit <= 0 {
		limit = repository.DefaultRecentLimit
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find plans: %w", err)
	}
	defer cursor.Close(ctx)

	records := []domain.PlanRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode plans: %w", err)
	}
	return records, nil
}

// EnsurePlanIndexes creates the timestamp index used by ListRecent. Call during startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("timestamp_desc"),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warn().Err(err).Str("collection", collection.Name()).Msg("Failed to create indexes")
	}
}
