package domain

import "fmt"

const (
	DefaultWorkoutDuration = 30
	MinWorkoutDuration     = 1
)

// WorkoutEntry is a single logged workout. Entries are only ever appended to a session.
type WorkoutEntry struct {
	Exercise  Exercise  `bson:"exercise" json:"exercise"`
	Duration  int       `bson:"duration" json:"duration"` // minutes
	Intensity Intensity `bson:"intensity" json:"intensity"`
}

// NewWorkoutEntry builds an entry from form input. Unknown choices fall back to the
// first exercise and Medium intensity; durations below one minute are raised to one.
func NewWorkoutEntry(exercise Exercise, duration int, intensity Intensity) WorkoutEntry {
	if !exercise.Valid() {
		exercise = Exercises[0]
	}
	if !intensity.Valid() {
		intensity = IntensityMedium
	}
	if duration < MinWorkoutDuration {
		duration = MinWorkoutDuration
	}
	return WorkoutEntry{Exercise: exercise, Duration: duration, Intensity: intensity}
}

func (w WorkoutEntry) String() string {
	return fmt.Sprintf("Exercise: %s | Duration: %d min | Intensity: %s", w.Exercise, w.Duration, w.Intensity)
}
