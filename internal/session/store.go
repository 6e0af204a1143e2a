package session

import (
	"net/http"
	"time"

	"fitsync/fitsync-ai/internal/config"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"
)

const (
	cookieName = "fitsync_session"
	idKey      = "sid"
)

// Store maps the session cookie to server-side State. States expire after the
// configured idle TTL, and the least recently used ones are evicted beyond MaxSessions.
type Store struct {
	cookies *sessions.CookieStore
	states  *expirable.LRU[string, *State]
}

func NewStore(cfg config.WebConfig) *Store {
	size := cfg.MaxSessions
	if size <= 0 {
		size = 1024
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	if cfg.SessionSecret == "" || cfg.SessionSecret == config.DefaultSessionSecret {
		log.Warn().Msg("Session cookies are signed with the development secret; set WEB_SESSION_SECRET")
	}

	cookies := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   cfg.SecureCookies(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{
		cookies: cookies,
		states: expirable.NewLRU[string, *State](size, func(id string, _ *State) {
			log.Debug().Str("session", id).Msg("Session state discarded")
		}, ttl),
	}
}

// Load returns the caller's State, starting a fresh one when the cookie is missing,
// invalid, or points at a state that has expired. The cookie is refreshed on every call.
func (s *Store) Load(w http.ResponseWriter, r *http.Request) (*State, error) {
	// A decode error still yields a usable new session.
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Msg("Ignoring unreadable session cookie")
	}

	id, _ := sess.Values[idKey].(string)
	state, ok := s.states.Get(id)
	if id == "" || !ok {
		state = newState(uuid.NewString())
		sess.Values[idKey] = state.ID
	}
	// Add refreshes the idle TTL.
	s.states.Add(state.ID, state)

	if err := sess.Save(r, w); err != nil {
		return nil, err
	}
	return state, nil
}

// Discard ends the caller's session: its State is dropped and the cookie expired.
func (s *Store) Discard(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, cookieName)
	if id, ok := sess.Values[idKey].(string); ok {
		s.states.Remove(id)
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// Len reports how many sessions are live.
func (s *Store) Len() int {
	return s.states.Len()
}
