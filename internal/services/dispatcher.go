package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/search-task-gang/internal/models"
	srvErrors "github.com/kubev2v/search-task-gang/pkg/errors"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

// dispatchGracePeriod bounds the wait for the input dispatches of an interrupted run.
const dispatchGracePeriod = time.Second

type runQueueKey struct{}

type DispatcherOption func(*Dispatcher)

// WithSearchFunc replaces the search run by every search unit.
func WithSearchFunc(fn models.SearchFunc) DispatcherOption {
	return func(d *Dispatcher) {
		if fn != nil {
			d.search = fn
		}
	}
}

// WithSink sets where the outcomes are forwarded.
func WithSink(sink models.ResultSink) DispatcherOption {
	return func(d *Dispatcher) {
		if sink != nil {
			d.sink = sink
		}
	}
}

// WithInputDispatcher replaces the hook invoked for every input of a run.
// The hook must submit exactly one unit per word through the dispatcher.
func WithInputDispatcher(hook models.InputDispatcher) DispatcherOption {
	return func(d *Dispatcher) {
		if hook != nil {
			d.hook = hook
		}
	}
}

// Dispatcher fans out one search unit per (input, word) pair onto the
// scheduler and drains the outcomes in completion order.
type Dispatcher struct {
	scheduler *scheduler.Scheduler
	words     []string
	search    models.SearchFunc
	sink      models.ResultSink
	hook      models.InputDispatcher
	queue     *scheduler.CompletionQueue[models.SearchResult]
	state     models.RunState
	mu        sync.Mutex
}

func NewDispatcher(s *scheduler.Scheduler, words []string, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		scheduler: s,
		words:     slices.Clone(words),
		search:    DefaultSearch,
		sink:      discardSink{},
		queue:     scheduler.NewCompletionQueue[models.SearchResult](s),
		state:     models.RunStateNotStarted,
	}
	d.hook = d

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Words returns the words searched by every run.
func (d *Dispatcher) Words() []string {
	return slices.Clone(d.words)
}

func (d *Dispatcher) State() models.RunState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// DispatchForInput submits one search unit per word for input into the queue
// of the run that ctx belongs to. It submits nothing once ctx is done.
func (d *Dispatcher) DispatchForInput(ctx context.Context, input models.Input) bool {
	if ctx.Err() != nil {
		return false
	}

	q, ok := ctx.Value(runQueueKey{}).(*scheduler.CompletionQueue[models.SearchResult])
	if !ok {
		q = d.currentQueue()
	}
	for _, word := range d.words {
		submitUnit(q, input, word, d.search)
	}
	return true
}

// Run searches every word in every input and forwards exactly
// len(inputs)*len(words) outcomes to the sink, in completion order.
// A failed search is reported as a failure outcome and does not stop the run.
// Run only returns early when ctx is done.
func (d *Dispatcher) Run(ctx context.Context, inputs []models.Input) (stats models.RunStats, err error) {
	q, err := d.begin()
	if err != nil {
		return models.RunStats{}, err
	}

	stats = models.RunStats{
		RunID:    uuid.New(),
		Inputs:   len(inputs),
		Words:    len(d.words),
		Expected: len(inputs) * len(d.words),
	}
	log := zap.S().Named("dispatcher").With("run_id", stats.RunID.String())
	start := time.Now()

	defer func() {
		stats.Duration = time.Since(start)
		d.setState(models.RunStateDone)
	}()

	log.Infow("run started", "inputs", stats.Inputs, "words", stats.Words, "expected", stats.Expected)

	// each input is dispatched by its own work so scheduling overlaps across inputs
	dispatches := make([]*scheduler.Future[any], 0, len(inputs))
	for _, input := range inputs {
		dispatches = append(dispatches, d.scheduler.AddWork(func(ctx context.Context) (any, error) {
			return d.hook.DispatchForInput(context.WithValue(ctx, runQueueKey{}, q), input), nil
		}))
	}

	d.setState(models.RunStateDraining)

	for stats.Drained < stats.Expected {
		f, err := q.Take(ctx)
		if err != nil {
			log.Errorw("run interrupted", "drained", stats.Drained, "expected", stats.Expected, "error", err)
			d.abandonDispatches(ctx, dispatches, log)
			return stats, fmt.Errorf("run interrupted after %d of %d results: %w", stats.Drained, stats.Expected, err)
		}
		stats.Drained++

		outcome := resolve(f)
		if outcome.IsSuccess() {
			stats.Succeeded++
		} else {
			stats.Failed++
			log.Errorw("search failed",
				"kind", outcome.Failure.Kind,
				"input", outcome.Failure.InputID,
				"word", outcome.Failure.Word,
				"error", outcome.Failure.Err)
		}

		d.sink.Consume(ctx, outcome)
	}

	d.awaitDispatches(ctx, dispatches, log)

	log.Infow("run finished",
		"drained", stats.Drained,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"duration", time.Since(start))

	return stats, nil
}

func (d *Dispatcher) begin() (*scheduler.CompletionQueue[models.SearchResult], error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == models.RunStateScheduling || d.state == models.RunStateDraining {
		return nil, srvErrors.NewRunInProgressError()
	}
	d.state = models.RunStateScheduling
	// a fresh queue per run keeps late units of an interrupted run out of the next one
	d.queue = scheduler.NewCompletionQueue[models.SearchResult](d.scheduler)
	return d.queue, nil
}

func (d *Dispatcher) setState(state models.RunState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = state
}

func (d *Dispatcher) currentQueue() *scheduler.CompletionQueue[models.SearchResult] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue
}

// abandonDispatches stops the dispatch works of an interrupted run and waits
// for them at most dispatchGracePeriod, so a blocked hook cannot hold Run.
func (d *Dispatcher) abandonDispatches(ctx context.Context, dispatches []*scheduler.Future[any], log *zap.SugaredLogger) {
	for _, f := range dispatches {
		f.Stop()
	}

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchGracePeriod)
	defer cancel()
	d.awaitDispatches(wctx, dispatches, log)
}

// awaitDispatches waits for the input dispatch works and logs the ones that
// did not dispatch their input or did not finish before ctx ended.
func (d *Dispatcher) awaitDispatches(ctx context.Context, dispatches []*scheduler.Future[any], log *zap.SugaredLogger) {
	pending := 0
	for i, f := range dispatches {
		r, err := f.Wait(ctx)
		switch {
		case err != nil:
			pending++
			log.Warnw("input dispatch still running", "input_index", i, "error", err)
		case r.Err != nil:
			log.Errorw("input dispatch failed", "input_index", i, "error", r.Err)
		default:
			if dispatched, _ := r.Data.(bool); !dispatched {
				log.Warnw("input dispatcher asked to stop", "input_index", i)
			}
		}
	}
	if pending > 0 {
		log.Errorw("gave up waiting for input dispatches", "pending", pending, "total", len(dispatches))
	}
}

// resolve turns a finished future into an outcome. Get never blocks here
// since the completion queue only hands out finished futures.
func resolve(f *scheduler.Future[models.SearchResult]) models.Outcome {
	r, err := f.Get()
	if err != nil {
		return models.NewFailureOutcome(models.Failure{
			Kind: models.FailureResolution,
			Err:  srvErrors.NewResolutionError(err),
		})
	}

	if r.Err == nil {
		return models.NewSuccessOutcome(r.Data)
	}

	failure := models.Failure{
		Kind:    models.FailureSearch,
		InputID: r.Data.InputID,
		Word:    r.Data.Word,
		Err:     r.Err,
	}

	se, isSearchErr := srvErrors.AsSearchError(r.Err)
	switch {
	case isSearchErr && se.Panicked:
		failure.Kind = models.FailurePanic
	case errors.Is(r.Err, context.Canceled):
		failure.Kind = models.FailureCanceled
	}
	if isSearchErr {
		failure.InputID = se.InputID
		failure.Word = se.Word
	}

	return models.NewFailureOutcome(failure)
}

type discardSink struct{}

func (discardSink) Consume(context.Context, models.Outcome) {}

// ValidateWords rejects an empty word list and empty words.
func ValidateWords(words []string) error {
	if len(words) == 0 {
		return srvErrors.NewValidationError("at least one word is required")
	}
	for i, w := range words {
		if w == "" {
			return srvErrors.NewValidationError("word %d is empty", i)
		}
	}
	return nil
}
