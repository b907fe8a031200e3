package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/kubev2v/search-task-gang/internal/models"
	srvErrors "github.com/kubev2v/search-task-gang/pkg/errors"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
	"github.com/kubev2v/search-task-gang/pkg/search"
)

// DefaultSearch looks for word in text with search.Find.
func DefaultSearch(_ context.Context, word, text string) ([]int, error) {
	return search.Find(word, text), nil
}

// newSearchUnit builds the work searching word in input. The returned result
// always carries the (input, word) pair, even on failure.
func newSearchUnit(input models.Input, word string, fn models.SearchFunc) scheduler.Work[models.SearchResult] {
	return func(ctx context.Context) (result models.SearchResult, err error) {
		result = models.SearchResult{InputID: input.ID, Word: word}

		defer func() {
			if rec := recover(); rec != nil {
				zap.S().Named("search_unit").Errorw("search panicked", "input", input.ID, "word", word, "panic", rec)
				err = srvErrors.NewSearchPanicError(input.ID, word, rec)
			}
		}()

		var positions []int
		positions, err = fn(ctx, word, input.Text)
		if err != nil {
			return result, srvErrors.NewSearchError(input.ID, word, err)
		}

		result.Positions = positions
		zap.S().Named("search_unit").Debugw("search finished", "input", input.ID, "word", word, "matches", len(positions))
		return result, nil
	}
}

// submitUnit queues the search of word in input. A unit rejected by a closed
// pool still reports its (input, word) pair.
func submitUnit(q *scheduler.CompletionQueue[models.SearchResult], input models.Input, word string, fn models.SearchFunc) *scheduler.Future[models.SearchResult] {
	return q.SubmitWithData(newSearchUnit(input, word, fn), models.SearchResult{InputID: input.ID, Word: word})
}
