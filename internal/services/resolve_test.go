package services

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/search-task-gang/internal/models"
	srvErrors "github.com/kubev2v/search-task-gang/pkg/errors"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

var _ = Describe("resolve", func() {
	var s *scheduler.Scheduler

	BeforeEach(func() {
		s = scheduler.NewScheduler()
	})

	AfterEach(func() {
		s.Close()
	})

	It("should report a resolution failure for an unfinished future", func() {
		q := scheduler.NewCompletionQueue[models.SearchResult](s)
		unblock := make(chan struct{})
		defer close(unblock)

		f := q.Submit(func(ctx context.Context) (models.SearchResult, error) {
			<-unblock
			return models.SearchResult{}, nil
		})

		outcome := resolve(f)
		Expect(outcome.IsSuccess()).To(BeFalse())
		Expect(outcome.Failure.Kind).To(Equal(models.FailureResolution))
		Expect(srvErrors.IsResolutionError(outcome.Failure.Err)).To(BeTrue())
	})

	// Given a closed scheduler
	// When a search unit is submitted
	// Then it is reported as canceled with the pair it would have searched
	It("should report units rejected by a closed scheduler as canceled", func() {
		q := scheduler.NewCompletionQueue[models.SearchResult](s)
		s.Close()

		submitUnit(q, models.Input{ID: "input-0", Text: "text"}, "text", DefaultSearch)

		f, err := q.Take(context.Background())
		Expect(err).NotTo(HaveOccurred())

		outcome := resolve(f)
		Expect(outcome.Failure.Kind).To(Equal(models.FailureCanceled))
		Expect(outcome.Failure.InputID).To(Equal("input-0"))
		Expect(outcome.Failure.Word).To(Equal("text"))
		Expect(outcome.Failure.Err).To(MatchError(context.Canceled))
	})

	It("should report every unit of an input dispatched on a closed scheduler", func() {
		d := NewDispatcher(s, []string{"a", "b"})
		s.Close()

		Expect(d.DispatchForInput(context.Background(), models.Input{ID: "doc:3", Text: "ab"})).To(BeTrue())

		var pairs []string
		for range 2 {
			f, err := d.currentQueue().Take(context.Background())
			Expect(err).NotTo(HaveOccurred())
			outcome := resolve(f)
			Expect(outcome.Failure.Kind).To(Equal(models.FailureCanceled))
			pairs = append(pairs, outcome.Failure.InputID+"/"+outcome.Failure.Word)
		}
		Expect(pairs).To(ConsistOf("doc:3/a", "doc:3/b"))
	})

	It("should keep the pair of a unit canceled while searching", func() {
		q := scheduler.NewCompletionQueue[models.SearchResult](s)
		unit := newSearchUnit(models.Input{ID: "input-3", Text: "text"}, "word",
			func(ctx context.Context, word, text string) ([]int, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		f := q.Submit(unit)
		time.Sleep(20 * time.Millisecond)
		f.Stop()

		taken, err := q.Take(context.Background())
		Expect(err).NotTo(HaveOccurred())

		outcome := resolve(taken)
		Expect(outcome.Failure.Kind).To(Equal(models.FailureCanceled))
		Expect(outcome.Failure.InputID).To(Equal("input-3"))
		Expect(outcome.Failure.Word).To(Equal("word"))
	})
})
