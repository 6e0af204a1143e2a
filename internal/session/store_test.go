package session

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitsync/fitsync-ai/internal/config"
	"fitsync/fitsync-ai/internal/domain"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(maxSessions int, ttl time.Duration) *Store {
	return NewStore(config.WebConfig{
		SessionSecret: "test-secret",
		SessionTTL:    ttl,
		MaxSessions:   maxSessions,
	})
}

// load runs Load against a request carrying cookies and returns the state and new cookies.
func load(t *testing.T, store *Store, cookies []*http.Cookie) (*State, []*http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	state, err := store.Load(w, req)
	require.NoError(t, err)
	return state, w.Result().Cookies()
}

func TestNewSessionHasDefaults(t *testing.T) {
	state, cookies := load(t, testStore(10, time.Minute), nil)
	require.NotEmpty(t, cookies)
	assert.NotEmpty(t, state.ID)
	assert.Equal(t, domain.DefaultProfile(), state.Profile())
	assert.Empty(t, state.Workouts())
}

func TestCookieReturnsSameState(t *testing.T) {
	store := testStore(10, time.Minute)
	first, cookies := load(t, store, nil)
	first.AddWorkout(domain.NewWorkoutEntry(domain.ExerciseSquat, 20, domain.IntensityHigh))

	second, _ := load(t, store, cookies)
	assert.Same(t, first, second)
	assert.Len(t, second.Workouts(), 1)
	assert.Equal(t, 1, store.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	store := testStore(10, time.Minute)
	a, _ := load(t, store, nil)
	b, _ := load(t, store, nil)
	a.AddWorkout(domain.NewWorkoutEntry(domain.ExercisePlank, 3, domain.IntensityLow))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, b.Workouts())
}

func TestTamperedCookieStartsFresh(t *testing.T) {
	store := testStore(10, time.Minute)
	first, cookies := load(t, store, nil)
	cookies[0].Value = "garbage" + cookies[0].Value

	second, _ := load(t, store, cookies)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDiscard(t *testing.T) {
	store := testStore(10, time.Minute)
	first, cookies := load(t, store, nil)

	req := httptest.NewRequest(http.MethodPost, "/reset", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	require.NoError(t, store.Discard(w, req))
	assert.Equal(t, 0, store.Len())

	second, _ := load(t, store, cookies)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestLeastRecentlyUsedEvicted(t *testing.T) {
	store := testStore(2, time.Minute)
	_, oldest := load(t, store, nil)
	load(t, store, nil)
	load(t, store, nil)
	assert.Equal(t, 2, store.Len())

	// The evicted session gets a fresh state with defaults.
	state, _ := load(t, store, oldest)
	assert.Equal(t, domain.DefaultProfile(), state.Profile())
}

func TestStateUserDataIncludesWorkouts(t *testing.T) {
	state := newState("x")
	p := domain.DefaultProfile()
	p.Age = 500
	p.Goal = "run a marathon"
	state.SetProfile(p)
	state.AddWorkout(domain.NewWorkoutEntry(domain.ExerciseLunges, 10, domain.IntensityMedium))
	state.AddWorkout(domain.NewWorkoutEntry(domain.ExercisePushUp, 15, domain.IntensityHigh))

	data := state.UserData()
	assert.Equal(t, domain.MaxAge, data.Age)
	assert.Equal(t, "run a marathon", data.Goal)
	require.Len(t, data.Workouts, 2)
	assert.Equal(t, domain.ExerciseLunges, data.Workouts[0].Exercise)
	assert.Nil(t, state.Profile().Workouts)
}

func TestSecureCookieUnderTLS(t *testing.T) {
	store := NewStore(config.WebConfig{
		SessionSecret: "test-secret",
		TLSCertFile:   "cert.pem",
		TLSKeyFile:    "key.pem",
	})
	_, cookies := load(t, store, nil)
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].Secure)

	_, plain := load(t, testStore(10, time.Minute), nil)
	require.NotEmpty(t, plain)
	assert.False(t, plain[0].Secure)
}

func TestDevelopmentSecretWarns(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	testStore(10, time.Minute)
	assert.Empty(t, buf.String())

	NewStore(config.WebConfig{SessionSecret: config.DefaultSessionSecret})
	assert.Contains(t, buf.String(), "development secret")
}
