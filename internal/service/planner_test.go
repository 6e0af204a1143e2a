package service

import (
	"context"
	"fitsync/fitsync-ai/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() domain.Profile {
	p := domain.DefaultProfile()
	p.Age = 30
	p.Goal = "six pack"
	return p
}

func TestPlannerStoresSuccessfulPlan(t *testing.T) {
	repo := &fakePlanRepo{}
	planner := NewPlanner(&fakeRequester{plan: "I. Lift\n\nEat"}, NewPlanRecorder(repo, nil))

	out := planner.Run(context.Background(), testProfile())
	require.NoError(t, out.Err)
	require.NoError(t, out.StoreErr)
	assert.True(t, out.Saved())
	assert.Equal(t, "I. Lift\n\nEat", out.Plan)
	require.Len(t, out.Sections, 2)
	assert.Equal(t, "Workout Routine", out.Sections[0].Label)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "I. Lift\n\nEat", repo.inserted[0].FitnessPlan)
	assert.Equal(t, 30, repo.inserted[0].UserData.Age)
	assert.WithinDuration(t, time.Now(), repo.inserted[0].Timestamp, time.Minute)
}

func TestPlannerUpstreamFailureStoresNothing(t *testing.T) {
	repo := &fakePlanRepo{}
	planner := NewPlanner(&fakeRequester{err: errBoom}, NewPlanRecorder(repo, nil))

	out := planner.Run(context.Background(), testProfile())
	assert.Equal(t, UpstreamFailure, KindOf(out.Err))
	assert.Empty(t, out.Plan)
	assert.Empty(t, repo.inserted)
}

func TestPlannerPersistenceFailureKeepsPlan(t *testing.T) {
	repo := &fakePlanRepo{err: errBoom}
	planner := NewPlanner(&fakeRequester{plan: "hello"}, NewPlanRecorder(repo, nil))

	out := planner.Run(context.Background(), testProfile())
	assert.NoError(t, out.Err)
	assert.Equal(t, "hello", out.Plan)
	assert.False(t, out.Saved())
	assert.Equal(t, PersistenceFailure, KindOf(out.StoreErr))
}

func TestRecorderArchivesMarkdown(t *testing.T) {
	repo := &fakePlanRepo{}
	archive := &fakeArchive{}
	recorder := NewPlanRecorder(repo, archive)

	record, err := recorder.Record(context.Background(), testProfile(), "II. Sleep\n\nMore")
	require.NoError(t, err)
	body, ok := archive.objects[record.ArchiveKey()]
	require.True(t, ok)
	assert.Equal(t, "## II. Recovery Strategies\n\nII. Sleep\n\nMore", string(body))

	recent, err := recorder.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "https://archive.test/"+record.ArchiveKey(), recent[0].DownloadURL)
}

func TestRecorderArchiveFailureIsNotFatal(t *testing.T) {
	repo := &fakePlanRepo{}
	recorder := NewPlanRecorder(repo, &fakeArchive{putErr: errBoom})

	record, err := recorder.Record(context.Background(), testProfile(), "plan")
	require.NoError(t, err)
	assert.NotNil(t, record)
	assert.Len(t, repo.inserted, 1)
}

func TestRecentNewestFirst(t *testing.T) {
	repo := &fakePlanRepo{}
	recorder := NewPlanRecorder(repo, nil)
	for _, plan := range []string{"one", "two", "three"} {
		_, err := recorder.Record(context.Background(), testProfile(), plan)
		require.NoError(t, err)
	}

	recent, err := recorder.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "three", recent[0].Record.FitnessPlan)
	assert.Empty(t, recent[0].DownloadURL)
}
