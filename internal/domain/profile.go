package domain

import (
	"encoding/json"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "Beginner"
	LevelIntermediate FitnessLevel = "Intermediate"
	LevelAdvanced     FitnessLevel = "Advanced"
)

var FitnessLevels = []FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

func (l FitnessLevel) Valid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

// Form defaults for a fresh session.
const (
	DefaultAge          = 25
	DefaultGender       = GenderMale
	DefaultFitnessLevel = LevelIntermediate
	DefaultWeight       = 75.0
	DefaultHeight       = 175.0
	DefaultGoal         = "Six Pack (Abs)"
)

// Input bounds enforced by the form. The API itself accepts anything.
const (
	MinAge    = 1
	MaxAge    = 120
	MinWeight = 1.0
	MinHeight = 50.0
)

// Profile is the user's fitness attributes. Keys that are not part of the typed record
// are kept in Extra so arbitrary JSON objects survive a decode/encode cycle.
type Profile struct {
	Age          int            `bson:"age" json:"age"`
	Gender       Gender         `bson:"gender" json:"gender"`
	FitnessLevel FitnessLevel   `bson:"fitness_level" json:"fitness_level"`
	Weight       float64        `bson:"weight" json:"weight"` // kg
	Height       float64        `bson:"height" json:"height"` // cm
	Goal         string         `bson:"goal" json:"goal"`
	Workouts     []WorkoutEntry `bson:"workouts,omitempty" json:"workouts,omitempty"`

	Extra map[string]interface{} `bson:",inline" json:"-"`
}

// DefaultProfile returns the values a new session starts with.
func DefaultProfile() Profile {
	return Profile{
		Age:          DefaultAge,
		Gender:       DefaultGender,
		FitnessLevel: DefaultFitnessLevel,
		Weight:       DefaultWeight,
		Height:       DefaultHeight,
		Goal:         DefaultGoal,
	}
}

// Clamp brings form values back into the ranges the form offers.
func (p Profile) Clamp() Profile {
	if p.Age < MinAge {
		p.Age = MinAge
	}
	if p.Age > MaxAge {
		p.Age = MaxAge
	}
	if p.Weight < MinWeight {
		p.Weight = MinWeight
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}
	if !p.Gender.Valid() {
		p.Gender = DefaultGender
	}
	if !p.FitnessLevel.Valid() {
		p.FitnessLevel = DefaultFitnessLevel
	}
	return p
}

var profileKeys = map[string]struct{}{
	"age":           {},
	"gender":        {},
	"fitness_level": {},
	"weight":        {},
	"height":        {},
	"goal":          {},
	"workouts":      {},
}

// profileFields has the same layout as Profile without its JSON methods.
type profileFields Profile

func (p Profile) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(profileFields(p))
	if err != nil || len(p.Extra) == 0 {
		return data, err
	}

	merged := make(map[string]json.RawMessage, len(profileKeys)+len(p.Extra))
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, value := range p.Extra {
		if _, typed := profileKeys[key]; typed {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var fields profileFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	var extra map[string]interface{}
	for key, raw := range all {
		if _, typed := profileKeys[key]; typed {
			continue
		}
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		if extra == nil {
			extra = make(map[string]interface{})
		}
		extra[key] = value
	}

	*p = Profile(fields)
	p.Extra = extra
	return nil
}
