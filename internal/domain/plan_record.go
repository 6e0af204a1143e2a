// internal/domain/plan_record.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanRecord is the persisted pair of a submitted profile and the generated plan text.
// Records are append-only and duplicates are expected.
type PlanRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserData    Profile            `bson:"user_data" json:"user_data"`
	FitnessPlan string             `bson:"fitness_plan" json:"fitness_plan"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// ArchiveKey is the object key under which the plan's markdown copy is stored.
func (r *PlanRecord) ArchiveKey() string {
	return "plans/" + r.ID.Hex() + ".md"
}
