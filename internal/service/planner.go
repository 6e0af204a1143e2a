package service

import (
	"context"
	"fitsync/fitsync-ai/internal/domain"
	"fitsync/fitsync-ai/internal/plantext"

	"github.com/rs/zerolog/log"
)

// PlanRequester sends a profile to the plan generation API.
type PlanRequester interface {
	RequestPlan(ctx context.Context, profile domain.Profile) (string, error)
}

// Outcome is the result of one "get a plan" action.
//
// Err set: the plan could not be produced (UpstreamFailure), nothing was stored.
// StoreErr set: the plan is valid and shown, but saving it failed (PersistenceFailure).
type Outcome struct {
	Plan     string
	Sections []plantext.Section
	Record   *domain.PlanRecord
	Err      error
	StoreErr error
}

func (o Outcome) Saved() bool {
	return o.Record != nil
}

// Planner runs the request, persist, render cycle for the browser UI.
type Planner struct {
	requester PlanRequester
	recorder  PlanRecorder
}

func NewPlanner(requester PlanRequester, recorder PlanRecorder) *Planner {
	return &Planner{requester: requester, recorder: recorder}
}

// Run requests a plan and stores it only after a successful round trip.
func (p *Planner) Run(ctx context.Context, profile domain.Profile) Outcome {
	plan, err := p.requester.RequestPlan(ctx, profile)
	if err != nil {
		if KindOf(err) == "" {
			err = &UpstreamError{Err: err}
		}
		log.Ctx(ctx).Error().Err(err).Msg("Error while requesting plan")
		return Outcome{Err: err}
	}

	outcome := Outcome{
		Plan:     plan,
		Sections: plantext.Split(plan),
	}

	record, err := p.recorder.Record(ctx, profile, plan)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Error inserting plan into MongoDB")
		outcome.StoreErr = err
		return outcome
	}
	outcome.Record = record
	return outcome
}
