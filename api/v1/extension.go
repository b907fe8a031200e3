package v1

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kubev2v/search-task-gang/internal/models"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

// NewResultFromModel converts a models.SearchResult to an API Result.
func NewResultFromModel(r models.SearchResult) Result {
	positions := r.Positions
	if positions == nil {
		positions = []int{}
	}
	return Result{
		Input:     r.InputID,
		Word:      r.Word,
		Positions: positions,
		Found:     r.Found(),
	}
}

// NewFailureFromModel converts a models.Failure to an API Failure.
// Input and Word are left out when the pair is unknown.
func NewFailureFromModel(f models.Failure) Failure {
	var kind FailureKind
	switch f.Kind {
	case models.FailurePanic:
		kind = FailureKindPanic
	case models.FailureCanceled:
		kind = FailureKindCanceled
	case models.FailureResolution:
		kind = FailureKindResolution
	default:
		kind = FailureKindSearch
	}

	apiFailure := Failure{Kind: kind}
	if f.Err != nil {
		apiFailure.Error = f.Err.Error()
	}
	if f.InputID != "" {
		apiFailure.Input = &f.InputID
	}
	if f.Word != "" {
		apiFailure.Word = &f.Word
	}

	return apiFailure
}

func (s *Stats) FromModel(m models.RunStats) {
	s.Inputs = m.Inputs
	s.Words = m.Words
	s.Expected = m.Expected
	s.Succeeded = m.Succeeded
	s.Failed = m.Failed
	s.DurationMs = m.Duration.Milliseconds()
}

func (w *WorkerStats) FromModel(m scheduler.Stats) {
	w.Live = m.Live
	w.Busy = m.Busy
	w.Idle = m.Idle
	w.Queued = m.Queued
}

// ToModel converts an API Result back to a models.SearchResult.
func (r Result) ToModel() models.SearchResult {
	return models.SearchResult{
		InputID:   r.Input,
		Word:      r.Word,
		Positions: r.Positions,
	}
}

// ToModel converts an API Failure back to a models.Failure. The error keeps
// only its message.
func (f Failure) ToModel() models.Failure {
	m := models.Failure{
		Kind: models.FailureKind(f.Kind),
		Err:  errors.New(f.Error),
	}
	if f.Input != nil {
		m.InputID = *f.Input
	}
	if f.Word != nil {
		m.Word = *f.Word
	}
	return m
}

func (s Stats) ToModel(id string) models.RunStats {
	runID, _ := uuid.Parse(id)
	return models.RunStats{
		RunID:     runID,
		Inputs:    s.Inputs,
		Words:     s.Words,
		Expected:  s.Expected,
		Drained:   s.Succeeded + s.Failed,
		Succeeded: s.Succeeded,
		Failed:    s.Failed,
		Duration:  time.Duration(s.DurationMs) * time.Millisecond,
	}
}
