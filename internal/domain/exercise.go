// internal/domain/exercise.go
package domain

// Exercise is one of the fixed activities a user can log.
type Exercise string

const (
	ExerciseSquat      Exercise = "Squat"
	ExerciseBenchPress Exercise = "Bench Press"
	ExerciseDeadlift   Exercise = "Deadlift"
	ExercisePullUp     Exercise = "Pull-up"
	ExercisePushUp     Exercise = "Push-up"
	ExerciseLunges     Exercise = "Lunges"
	ExercisePlank      Exercise = "Plank"
)

// Exercises lists the catalog in display order.
var Exercises = []Exercise{
	ExerciseSquat,
	ExerciseBenchPress,
	ExerciseDeadlift,
	ExercisePullUp,
	ExercisePushUp,
	ExerciseLunges,
	ExercisePlank,
}

func (e Exercise) Valid() bool {
	for _, known := range Exercises {
		if e == known {
			return true
		}
	}
	return false
}

// Intensity of a logged workout.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

var Intensities = []Intensity{IntensityLow, IntensityMedium, IntensityHigh}

func (i Intensity) Valid() bool {
	return i == IntensityLow || i == IntensityMedium || i == IntensityHigh
}
