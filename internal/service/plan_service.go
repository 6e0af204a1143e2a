package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"fitsync/fitsync-ai/internal/domain"

	"github.com/rs/zerolog/log"
)

// TextGenerator is the model collaborator: prompt in, completion out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PlanService turns a submitted profile into plan text.
type PlanService interface {
	GeneratePlan(ctx context.Context, userData []byte) (string, error)
}

type planService struct {
	model TextGenerator
}

func NewPlanService(model TextGenerator) PlanService {
	return &planService{model: model}
}

// GeneratePlan requires userData to be valid JSON of any shape, then makes exactly one
// model call. There is no retry.
func (s *planService) GeneratePlan(ctx context.Context, userData []byte) (string, error) {
	if err := validateJSON(userData); err != nil {
		return "", err
	}
	logReceivedProfile(ctx, userData)

	prompt := ComposePrompt(userData)
	log.Ctx(ctx).Debug().Int("prompt_length", len(prompt)).Msg("Calling model")

	text, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	return text, nil
}

// validateJSON only checks syntax. Decoding into Go values would reject valid documents
// such as numbers beyond float64 range.
func validateJSON(data []byte) error {
	if json.Valid(data) {
		return nil
	}
	var discard interface{}
	if err := json.Unmarshal(data, &discard); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return errors.New("invalid JSON body")
}

// logReceivedProfile logs the typed fields of an object body and the names of any extra
// keys. Bodies of other shapes, or with values the typed record cannot hold, are still
// sent to the model unchanged.
func logReceivedProfile(ctx context.Context, userData []byte) {
	logger := log.Ctx(ctx)
	if !bytes.HasPrefix(bytes.TrimSpace(userData), []byte("{")) {
		logger.Debug().Int("bytes", len(userData)).Msg("Received user data that is not an object")
		return
	}

	var profile domain.Profile
	if err := json.Unmarshal(userData, &profile); err != nil {
		logger.Debug().Err(err).Int("bytes", len(userData)).Msg("Received user data that does not fit the profile record")
		return
	}

	extra := make([]string, 0, len(profile.Extra))
	for key := range profile.Extra {
		extra = append(extra, key)
	}
	sort.Strings(extra)

	logger.Info().
		Int("age", profile.Age).
		Str("gender", string(profile.Gender)).
		Str("fitness_level", string(profile.FitnessLevel)).
		Str("goal", profile.Goal).
		Int("workouts", len(profile.Workouts)).
		Strs("extra_fields", extra).
		Msg("Received profile")
}
