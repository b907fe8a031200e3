package infra

import (
	"errors"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/search-task-gang/api/v1"
	"github.com/kubev2v/search-task-gang/internal/config"
	"github.com/kubev2v/search-task-gang/internal/handlers"
	"github.com/kubev2v/search-task-gang/internal/server"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

// InProcessInfraManager runs the API in the test process on its own scheduler.
type InProcessInfraManager struct {
	cfg   *config.Configuration
	sched *scheduler.Scheduler
	srv   *httptest.Server
}

func NewInProcessInfraManager(cfg *config.Configuration) *InProcessInfraManager {
	return &InProcessInfraManager{cfg: cfg}
}

func (m *InProcessInfraManager) StartServer() (string, error) {
	if m.srv != nil {
		return "", errors.New("server already started")
	}

	sched := scheduler.NewScheduler(
		scheduler.WithMaxWorkers(m.cfg.Pool.MaxWorkers),
		scheduler.WithIdleTimeout(m.cfg.Pool.IdleTimeout),
	)

	h := handlers.New(sched)
	srv, err := server.NewServer(m.cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		sched.Close()
		return "", err
	}

	m.sched = sched
	m.srv = httptest.NewServer(srv.Handler())
	zap.S().Infow("started in-process server", "url", m.srv.URL)

	return m.srv.URL, nil
}

func (m *InProcessInfraManager) StopServer() error {
	if m.srv == nil {
		return nil
	}
	m.srv.Close()
	m.sched.Close()
	m.srv = nil
	return nil
}
