package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/search-task-gang/internal/models"
	"github.com/kubev2v/search-task-gang/internal/services"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

var _ = Describe("TaskGang", func() {
	var s *scheduler.Scheduler

	BeforeEach(func() {
		s = scheduler.NewScheduler()
	})

	AfterEach(func() {
		s.Close()
	})

	// Given two cycles of inputs
	// When the task gang runs
	// Then each cycle is drained in turn with its own stats
	It("should run every cycle in sequence", func() {
		sink := &collectSink{}
		d := services.NewDispatcher(s, []string{"go", "gang"}, services.WithSink(sink))

		var seen []int
		gang := services.NewTaskGang(d,
			makeInputs("go gang go", "stop"),
			makeInputs("gang"),
		).OnCycle(func(cycle int, stats models.RunStats) {
			seen = append(seen, cycle)
			Expect(len(sink.Outcomes())).To(Equal(map[int]int{0: 4, 1: 6}[cycle]))
		})

		all, err := gang.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(Equal([]int{0, 1}))
		Expect(all).To(HaveLen(2))
		Expect(all[0].Expected).To(Equal(4))
		Expect(all[1].Expected).To(Equal(2))
		Expect(all[0].RunID).NotTo(Equal(all[1].RunID))
	})

	It("should stop at the first interrupted cycle", func() {
		blocking := func(ctx context.Context, word, text string) ([]int, error) {
			time.Sleep(time.Second)
			return nil, nil
		}
		d := services.NewDispatcher(s, []string{"x"}, services.WithSearchFunc(blocking))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		all, err := services.NewTaskGang(d, makeInputs("x"), makeInputs("y")).Run(ctx)
		Expect(err).To(MatchError(ContainSubstring("cycle 0")))
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(all).To(HaveLen(1))
	})
})
