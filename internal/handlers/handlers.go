package handlers

import (
	"github.com/kubev2v/search-task-gang/internal/services"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

type Handler struct {
	scheduler *scheduler.Scheduler
	opts      []services.DispatcherOption
}

// New returns a handler running every search on sched. opts are applied to
// the dispatcher of every request, after the handler's own sink.
func New(sched *scheduler.Scheduler, opts ...services.DispatcherOption) *Handler {
	return &Handler{
		scheduler: sched,
		opts:      opts,
	}
}
