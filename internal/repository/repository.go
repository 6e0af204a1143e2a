package repository

import (
	"context"
	"fitsync/fitsync-ai/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRecentLimit caps listing queries when the caller passes no limit.
const DefaultRecentLimit = 20

// PlanRepository stores generated plans. Records are append-only.
type PlanRepository interface {
	Insert(ctx context.Context, record *domain.PlanRecord) (primitive.ObjectID, error)
	ListRecent(ctx context.Context, limit int64) ([]domain.PlanRecord, error)
}
