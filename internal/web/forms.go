package web

import "fitsync/fitsync-ai/internal/domain"

// ProfileForm is the profile section of the page.
type ProfileForm struct {
	Age          int     `form:"age"`
	Gender       string  `form:"gender"`
	FitnessLevel string  `form:"fitness_level"`
	Weight       float64 `form:"weight"`
	Height       float64 `form:"height"`
	Goal         string  `form:"goal"`
}

func (f ProfileForm) toProfile() domain.Profile {
	return domain.Profile{
		Age:          f.Age,
		Gender:       domain.Gender(f.Gender),
		FitnessLevel: domain.FitnessLevel(f.FitnessLevel),
		Weight:       f.Weight,
		Height:       f.Height,
		Goal:         f.Goal,
	}
}

// WorkoutForm is the add-workout section.
type WorkoutForm struct {
	Exercise  string `form:"exercise"`
	Duration  int    `form:"duration"`
	Intensity string `form:"intensity"`
}

func (f WorkoutForm) toEntry() domain.WorkoutEntry {
	return domain.NewWorkoutEntry(domain.Exercise(f.Exercise), f.Duration, domain.Intensity(f.Intensity))
}

// BMIForm is the standalone BMI calculator.
type BMIForm struct {
	Weight float64 `form:"bmi_weight"`
	Feet   int     `form:"height_ft" binding:"min=1,max=8"`
	Inches int     `form:"height_in" binding:"min=0,max=11"`
}
