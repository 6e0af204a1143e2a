package service

import (
	"context"
	"fitsync/fitsync-ai/internal/domain"
	"fitsync/fitsync-ai/internal/plantext"
	"fitsync/fitsync-ai/internal/repository"
	"fitsync/fitsync-ai/internal/storage"
	"time"

	"github.com/rs/zerolog/log"
)

const archiveContentType = "text/markdown; charset=utf-8"

// StoredPlan is a persisted record plus an optional link to its archived copy.
type StoredPlan struct {
	Record      domain.PlanRecord
	DownloadURL string
}

// PlanRecorder persists successful generations.
type PlanRecorder interface {
	Record(ctx context.Context, profile domain.Profile, plan string) (*domain.PlanRecord, error)
	Recent(ctx context.Context, limit int64) ([]StoredPlan, error)
}

type planRecorder struct {
	planRepo repository.PlanRepository
	archive  storage.FileStorage // nil when archiving is disabled
	now      func() time.Time
}

// NewPlanRecorder creates a recorder. archive may be nil.
func NewPlanRecorder(planRepo repository.PlanRepository, archive storage.FileStorage) PlanRecorder {
	return &planRecorder{
		planRepo: planRepo,
		archive:  archive,
		now:      time.Now,
	}
}

// Record inserts one document. An insert failure is returned as *PersistenceError and
// is never retried. An archive failure is only logged, since the record itself exists.
func (r *planRecorder) Record(ctx context.Context, profile domain.Profile, plan string) (*domain.PlanRecord, error) {
	record := &domain.PlanRecord{
		UserData:    profile,
		FitnessPlan: plan,
		Timestamp:   r.now().UTC(),
	}

	id, err := r.planRepo.Insert(ctx, record)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	record.ID = id

	if r.archive != nil {
		body := []byte(plantext.Markdown(plan))
		if err := r.archive.PutObject(ctx, record.ArchiveKey(), archiveContentType, body); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("key", record.ArchiveKey()).Msg("Failed to archive plan")
		}
	}
	return record, nil
}

// Recent lists stored plans, newest first.
func (r *planRecorder) Recent(ctx context.Context, limit int64) ([]StoredPlan, error) {
	records, err := r.planRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	plans := make([]StoredPlan, len(records))
	for i, record := range records {
		plans[i] = StoredPlan{Record: record}
		if r.archive == nil {
			continue
		}
		url, err := r.archive.GeneratePresignedDownloadURL(ctx, record.ArchiveKey(), storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("key", record.ArchiveKey()).Msg("Failed to presign plan download")
			continue
		}
		plans[i].DownloadURL = url
	}
	return plans, nil
}
