// Package session keeps per-browser form state for the web UI.
package session

import (
	"sync"

	"fitsync/fitsync-ai/internal/domain"
)

// State is one browser session's in-progress profile and logged workouts.
// A State is created with the form defaults and dropped when the session ends.
type State struct {
	ID string

	mu       sync.Mutex
	profile  domain.Profile
	workouts []domain.WorkoutEntry
}

func newState(id string) *State {
	return &State{ID: id, profile: domain.DefaultProfile()}
}

// Profile returns the current profile fields, without workouts.
func (s *State) Profile() domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetProfile replaces the profile fields after clamping them to the form's ranges.
func (s *State) SetProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Workouts = nil
	s.profile = p.Clamp()
}

// AddWorkout appends an entry. Entries are never edited or removed.
func (s *State) AddWorkout(w domain.WorkoutEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts = append(s.workouts, w)
}

// Workouts returns a copy of the logged entries in insertion order.
func (s *State) Workouts() []domain.WorkoutEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WorkoutEntry, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// UserData is the profile sent for plan generation: the form fields plus workout history.
func (s *State) UserData() domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile
	if len(s.workouts) > 0 {
		p.Workouts = make([]domain.WorkoutEntry, len(s.workouts))
		copy(p.Workouts, s.workouts)
	}
	return p
}
