package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kubev2v/search-task-gang/internal/config"
	"github.com/kubev2v/search-task-gang/internal/server/middlewares"
)

const (
	apiPrefix         = "/api/v1"
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

// NewServer builds the gin engine and registers the API routes under /api/v1
// through registerHandlerFn.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if registerHandlerFn == nil {
		return nil, errors.New("no handler registration function")
	}

	switch cfg.Server.ServerMode {
	case config.ServerModeProd:
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()

	router := engine.Group(apiPrefix)
	router.Use(
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.L(), true),
	)
	if limit := cfg.Server.RequestsLimit; limit > 0 {
		router.Use(middlewares.RateLimit(rate.NewLimiter(rate.Limit(limit), limit)))
	}
	registerHandlerFn(router)

	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              net.JoinHostPort("", fmt.Sprintf("%d", cfg.Server.HTTPPort)),
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server fails or is stopped. It returns
// http.ErrServerClosed after Stop.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	zap.S().Named("server").Infow("starting http server", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Info("stopping http server")
	return s.srv.Shutdown(ctx)
}
