package service

import "errors"

// FailureKind separates the two ways a plan request can go wrong.
type FailureKind string

const (
	// UpstreamFailure: the model call, or the hop to the API process, failed. No plan exists.
	UpstreamFailure FailureKind = "upstream"
	// PersistenceFailure: the plan was generated but could not be stored.
	PersistenceFailure FailureKind = "persistence"
)

// UpstreamError wraps a model or transport failure. Its message is the wrapped error's
// message unchanged, because that text is what the API reports to callers.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

// PersistenceError wraps a document store failure.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "store plan: " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

// KindOf reports the failure kind of err, or "" when err is nil or unclassified.
func KindOf(err error) FailureKind {
	var upstream *UpstreamError
	var persistence *PersistenceError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &upstream):
		return UpstreamFailure
	case errors.As(err, &persistence):
		return PersistenceFailure
	default:
		return ""
	}
}
