package service

import (
	"context"
	"errors"
	"fitsync/fitsync-ai/internal/domain"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

type fakePlanRepo struct {
	mu       sync.Mutex
	inserted []domain.PlanRecord
	err      error
}

func (f *fakePlanRepo) Insert(_ context.Context, record *domain.PlanRecord) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	record.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, *record)
	return record.ID, nil
}

func (f *fakePlanRepo) ListRecent(_ context.Context, limit int64) ([]domain.PlanRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.PlanRecord, 0, len(f.inserted))
	for i := len(f.inserted) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, f.inserted[i])
	}
	return out, nil
}

type fakeArchive struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeArchive) PutObject(_ context.Context, key, _ string, body []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = body
	return nil
}

func (f *fakeArchive) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://archive.test/" + key, nil
}

type fakeRequester struct {
	plan  string
	err   error
	calls int
}

func (f *fakeRequester) RequestPlan(context.Context, domain.Profile) (string, error) {
	f.calls++
	return f.plan, f.err
}

var errBoom = errors.New("boom")
