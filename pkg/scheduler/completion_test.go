package scheduler_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

var _ = Describe("CompletionQueue", func() {
	var (
		s   *scheduler.Scheduler
		q   *scheduler.CompletionQueue[int]
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = scheduler.NewScheduler()
		q = scheduler.NewCompletionQueue[int](s)
	})

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Context("Take", func() {
		// Given three works released in reverse submission order
		// When we take the futures
		// Then they come back in the order the works finished
		It("should return futures in finish order", func() {
			gates := []chan struct{}{make(chan struct{}), make(chan struct{}), make(chan struct{})}
			for i := range gates {
				idx := i
				q.Submit(func(ctx context.Context) (int, error) {
					<-gates[idx]
					return idx, nil
				})
			}

			for i := len(gates) - 1; i >= 0; i-- {
				close(gates[i])

				f, err := q.Take(ctx)
				Expect(err).NotTo(HaveOccurred())

				r, err := f.Get()
				Expect(err).NotTo(HaveOccurred())
				Expect(r.Data).To(Equal(i))
			}
			Expect(q.Outstanding()).To(BeZero())
		})

		It("should block until a work finishes", func() {
			unblock := make(chan struct{})
			q.Submit(func(ctx context.Context) (int, error) {
				<-unblock
				return 42, nil
			})

			taken := make(chan *scheduler.Future[int], 1)
			go func() {
				defer GinkgoRecover()
				f, err := q.Take(ctx)
				Expect(err).NotTo(HaveOccurred())
				taken <- f
			}()

			Consistently(taken, 200*time.Millisecond).ShouldNot(Receive())
			close(unblock)

			var f *scheduler.Future[int]
			Eventually(taken, time.Second).Should(Receive(&f))
			r, err := f.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Data).To(Equal(42))
		})

		It("should return the context error when nothing finishes in time", func() {
			tctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()

			f, err := q.Take(tctx)
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(f).To(BeNil())
		})

		It("should deliver failed and panicking works as finished futures", func() {
			boom := errors.New("boom")
			q.Submit(func(ctx context.Context) (int, error) { return 0, boom })
			q.Submit(func(ctx context.Context) (int, error) { panic("kaboom") })

			var errs []error
			for range 2 {
				f, err := q.Take(ctx)
				Expect(err).NotTo(HaveOccurred())
				r, err := f.Get()
				Expect(err).NotTo(HaveOccurred())
				errs = append(errs, r.Err)
			}

			Expect(errs).To(ContainElement(MatchError(boom)))
			Expect(errs).To(ContainElement(MatchError(ContainSubstring("worker panicked: kaboom"))))
		})

		It("should deliver works rejected by a closed scheduler", func() {
			s.Close()

			q.Submit(func(ctx context.Context) (int, error) { return 1, nil })

			f, ok := q.Poll()
			Expect(ok).To(BeTrue())
			r, err := f.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Err).To(MatchError(context.Canceled))
			s = nil
		})

		// Given a closed scheduler
		// When a work is submitted with data
		// Then the rejected future carries that data next to the error
		It("should keep the data of a rejected work", func() {
			s.Close()

			q.SubmitWithData(func(ctx context.Context) (int, error) { return 1, nil }, 42)

			f, err := q.Take(ctx)
			Expect(err).NotTo(HaveOccurred())
			r, err := f.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Data).To(Equal(42))
			Expect(r.Err).To(MatchError(context.Canceled))
			s = nil
		})

		It("should return the work result when the data is not needed", func() {
			f := q.SubmitWithData(func(ctx context.Context) (int, error) { return 1, nil }, 42)

			r, err := f.Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Err).NotTo(HaveOccurred())
			Expect(r.Data).To(Equal(1))
		})
	})

	Context("Poll", func() {
		It("should not block when nothing is ready", func() {
			f, ok := q.Poll()
			Expect(ok).To(BeFalse())
			Expect(f).To(BeNil())
		})
	})

	Context("Concurrent takers", func() {
		// Given many works and several goroutines taking concurrently
		// When all works finish
		// Then every future is taken exactly once
		It("should hand each future to exactly one taker", func() {
			const n = 300
			for i := range n {
				idx := i
				q.Submit(func(ctx context.Context) (int, error) {
					time.Sleep(time.Duration(rand.Intn(3)) * time.Millisecond)
					return idx, nil
				})
			}

			var (
				mu   sync.Mutex
				seen = make(map[int]int, n)
				wg   sync.WaitGroup
			)
			for t := range 4 {
				wg.Add(1)
				go func(takes int) {
					defer GinkgoRecover()
					defer wg.Done()
					for range takes {
						f, err := q.Take(ctx)
						Expect(err).NotTo(HaveOccurred())
						r, err := f.Get()
						Expect(err).NotTo(HaveOccurred())
						mu.Lock()
						seen[r.Data]++
						mu.Unlock()
					}
				}(n/4 + boolToInt(t == 0)*(n%4))
			}
			wg.Wait()

			Expect(seen).To(HaveLen(n))
			for _, count := range seen {
				Expect(count).To(Equal(1))
			}
		})
	})

	Context("Randomized latencies", func() {
		It("should never lose or duplicate a future across trials", func() {
			for trial := range 20 {
				n := 10 + rand.Intn(90)
				for i := range n {
					idx := i
					delay := time.Duration(rand.Intn(2000)) * time.Microsecond
					q.Submit(func(ctx context.Context) (int, error) {
						time.Sleep(delay)
						return idx, nil
					})
				}

				seen := make(map[int]bool, n)
				for range n {
					f, err := q.Take(ctx)
					Expect(err).NotTo(HaveOccurred())
					select {
					case <-f.Done():
					default:
						Fail("take returned an unfinished future")
					}
					r, _ := f.Get()
					Expect(seen).NotTo(HaveKey(r.Data), "trial %d", trial)
					seen[r.Data] = true
				}
				Expect(seen).To(HaveLen(n))
				Expect(q.Outstanding()).To(BeZero())
			}
		})
	})
})

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
