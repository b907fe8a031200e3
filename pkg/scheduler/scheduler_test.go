package scheduler_test

import (
	"context"
	"runtime"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

var _ = Describe("Scheduler", func() {
	var s *scheduler.Scheduler

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Describe("AddWork", func() {
		It("should add work and return a future", func() {
			s = scheduler.NewScheduler()

			work := func(ctx context.Context) (any, error) {
				return "done", nil
			}

			future := s.AddWork(work)
			Expect(future).NotTo(BeNil())

			Eventually(future.Done(), 2*time.Second).Should(BeClosed())
			result, err := future.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Data).To(Equal("done"))
		})

		It("should report ErrFutureNotDone while the work is running", func() {
			s = scheduler.NewScheduler()

			unblock := make(chan struct{})
			future := s.AddWork(func(ctx context.Context) (any, error) {
				<-unblock
				return nil, nil
			})

			_, err := future.Get()
			Expect(err).To(MatchError(scheduler.ErrFutureNotDone))

			close(unblock)
			result, err := future.Wait(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Err).NotTo(HaveOccurred())
		})
	})

	Describe("Run work", func() {
		It("should execute multiple work items", func() {
			s = scheduler.NewScheduler()

			results := make(chan int, 3)
			for i := range 3 {
				idx := i
				work := func(ctx context.Context) (any, error) {
					results <- idx
					return idx, nil
				}
				s.AddWork(work)
			}

			Eventually(func() int {
				return len(results)
			}, 2*time.Second, 100*time.Millisecond).Should(Equal(3))
		})

		It("should recover from a panicking work", func() {
			s = scheduler.NewScheduler()

			future := s.AddWork(func(ctx context.Context) (any, error) {
				panic("boom")
			})

			result, err := future.Wait(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Err).To(MatchError(ContainSubstring("worker panicked: boom")))

			next := s.AddWork(func(ctx context.Context) (any, error) {
				return "still alive", nil
			})
			result, err = next.Wait(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Data).To(Equal("still alive"))
		})
	})

	Describe("Elastic pool", func() {
		It("should grow to run all blocked work concurrently", func() {
			s = scheduler.NewScheduler()

			const n = 20
			var started sync.WaitGroup
			started.Add(n)
			unblock := make(chan struct{})
			for range n {
				s.AddWork(func(ctx context.Context) (any, error) {
					started.Done()
					<-unblock
					return nil, nil
				})
			}

			allStarted := make(chan struct{})
			go func() {
				started.Wait()
				close(allStarted)
			}()
			Eventually(allStarted, 2*time.Second).Should(BeClosed())
			Expect(s.Stats().Live).To(Equal(n))
			Expect(s.Stats().Busy).To(Equal(n))

			close(unblock)
			Eventually(func() int { return s.Stats().Busy }, 2*time.Second).Should(BeZero())
		})

		It("should reuse idle workers instead of spawning new ones", func() {
			s = scheduler.NewScheduler()

			for range 5 {
				f := s.AddWork(func(ctx context.Context) (any, error) { return nil, nil })
				_, err := f.Wait(context.Background())
				Expect(err).NotTo(HaveOccurred())
				Eventually(func() int { return s.Stats().Busy }, time.Second).Should(BeZero())
			}

			Expect(s.Stats().Live).To(Equal(1))
		})

		It("should reclaim idle workers after the idle timeout", func() {
			s = scheduler.NewScheduler(scheduler.WithIdleTimeout(50 * time.Millisecond))

			var wg sync.WaitGroup
			unblock := make(chan struct{})
			for range 4 {
				wg.Add(1)
				s.AddWork(func(ctx context.Context) (any, error) {
					defer wg.Done()
					<-unblock
					return nil, nil
				})
			}

			Eventually(func() int { return s.Stats().Live }, time.Second).Should(Equal(4))
			close(unblock)
			wg.Wait()

			Eventually(func() int { return s.Stats().Live }, 2*time.Second, 10*time.Millisecond).Should(BeZero())
		})

		It("should queue work when the max workers bound is reached", func() {
			s = scheduler.NewScheduler(scheduler.WithMaxWorkers(2))

			unblock := make(chan struct{})
			futures := make([]*scheduler.Future[any], 0, 5)
			for range 5 {
				futures = append(futures, s.AddWork(func(ctx context.Context) (any, error) {
					<-unblock
					return nil, nil
				}))
			}

			Eventually(func() int { return s.Stats().Queued }, time.Second).Should(Equal(3))
			Consistently(func() int { return s.Stats().Live }, 200*time.Millisecond).Should(Equal(2))

			close(unblock)
			for _, f := range futures {
				Eventually(f.Done(), 2*time.Second).Should(BeClosed())
			}
		})
	})

	Describe("Cancel work", func() {
		It("should cancel work via future.Stop()", func() {
			s = scheduler.NewScheduler()

			cancelled := make(chan bool, 1)
			work := func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			}

			future := s.AddWork(work)
			time.Sleep(100 * time.Millisecond)
			future.Stop()

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})

		It("should cancel work when scheduler is closed", func() {
			s = scheduler.NewScheduler()

			cancelled := make(chan bool, 1)
			work := func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			}

			s.AddWork(work)
			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})
	})

	Describe("Goroutine cleanup", func() {
		It("should not leak goroutines after Close under load", func() {
			base := runtime.NumGoroutine()
			s = scheduler.NewScheduler()

			work := func(ctx context.Context) (any, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}

			for i := 0; i < 200; i++ {
				s.AddWork(work)
			}

			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base+10))
		})
	})

	Describe("Close behavior", func() {
		It("should return canceled when AddWork is called after Close", func() {
			s = scheduler.NewScheduler()
			s.Close()

			future := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})

			Eventually(future.Done(), 1*time.Second).Should(BeClosed())
			result, err := future.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Err).To(MatchError(context.Canceled))
		})

		It("should fail queued work that never started on Close", func() {
			s = scheduler.NewScheduler(scheduler.WithMaxWorkers(1))

			started := make(chan struct{})
			unblock := make(chan struct{})
			s.AddWork(func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return nil, nil
			})
			Eventually(started, time.Second).Should(BeClosed())

			queued := s.AddWork(func(ctx context.Context) (any, error) {
				return "never", nil
			})

			go func() {
				time.Sleep(100 * time.Millisecond)
				close(unblock)
			}()
			s.Close()
			s = nil

			result, err := queued.Get()
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Err).To(MatchError(context.Canceled))
		})

		It("should wait for in-flight work to finish on Close", func() {
			s = scheduler.NewScheduler()

			started := make(chan struct{})
			unblock := make(chan struct{})
			work := func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return "done", nil
			}

			s.AddWork(work)
			Eventually(started, 1*time.Second).Should(BeClosed())

			closeDone := make(chan struct{})
			go func() {
				s.Close()
				close(closeDone)
			}()

			Consistently(closeDone, 200*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, 1*time.Second).Should(BeClosed())
			Expect(s.Stats().Live).To(BeZero())
			s = nil // prevent AfterEach from closing again
		})
	})
})
