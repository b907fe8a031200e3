package models

import "fmt"

type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "failure"
)

// FailureKind classifies why a search unit did not produce a result.
type FailureKind string

const (
	// FailureSearch - the search function returned an error
	FailureSearch FailureKind = "search"
	// FailurePanic - the search function panicked
	FailurePanic FailureKind = "panic"
	// FailureCanceled - the pool closed before the unit ran, or the unit's
	// context was canceled while it searched
	FailureCanceled FailureKind = "canceled"
	// FailureResolution - the handle outcome could not be read
	FailureResolution FailureKind = "resolution"
)

// Failure describes a failed unit. InputID and Word are empty when the pair is unknown.
type Failure struct {
	Kind    FailureKind
	InputID string
	Word    string
	Err     error
}

func (f Failure) Error() string {
	if f.Word == "" && f.InputID == "" {
		return fmt.Sprintf("%s failure: %v", f.Kind, f.Err)
	}
	return fmt.Sprintf("%s failure for %q in input %q: %v", f.Kind, f.Word, f.InputID, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Outcome is either a successful SearchResult or a Failure.
type Outcome struct {
	Kind    OutcomeKind
	Result  SearchResult
	Failure *Failure
}

func NewSuccessOutcome(r SearchResult) Outcome {
	return Outcome{Kind: OutcomeSuccess, Result: r}
}

func NewFailureOutcome(f Failure) Outcome {
	return Outcome{Kind: OutcomeFailure, Failure: &f}
}

func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}
