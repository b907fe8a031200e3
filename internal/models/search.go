package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Input is one text to search, identified by ID.
type Input struct {
	ID   string
	Text string
}

// SearchResult holds the positions of Word in the input InputID.
type SearchResult struct {
	InputID   string
	Word      string
	Positions []int
}

// Found reports whether the word appears at least once.
func (r SearchResult) Found() bool {
	return len(r.Positions) > 0
}

// SearchFunc searches one word in one text and returns the match positions.
type SearchFunc func(ctx context.Context, word, text string) ([]int, error)

// ResultSink receives every outcome of a run, in completion order.
type ResultSink interface {
	Consume(ctx context.Context, outcome Outcome)
}

// InputDispatcher fans out the search units of one input.
// It returns false when the run should stop scheduling.
type InputDispatcher interface {
	DispatchForInput(ctx context.Context, input Input) bool
}

// RunState is the state of a dispatcher run.
type RunState string

const (
	RunStateNotStarted RunState = "not_started"
	RunStateScheduling RunState = "scheduling"
	RunStateDraining   RunState = "draining"
	RunStateDone       RunState = "done"
)

// RunStats summarises one run.
type RunStats struct {
	RunID     uuid.UUID
	Inputs    int
	Words     int
	Expected  int
	Drained   int
	Succeeded int
	Failed    int
	Duration  time.Duration
}
