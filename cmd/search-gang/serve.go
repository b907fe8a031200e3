package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	v1 "github.com/kubev2v/search-task-gang/api/v1"
	"github.com/kubev2v/search-task-gang/internal/config"
	"github.com/kubev2v/search-task-gang/internal/handlers"
	"github.com/kubev2v/search-task-gang/internal/server"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "server mode: dev or prod")
	f.IntVar(&cfg.Server.HTTPPort, "http-port", cfg.Server.HTTPPort, "HTTP listen port")
	f.IntVar(&cfg.Server.RequestsLimit, "requests-limit", cfg.Server.RequestsLimit, "maximum API requests per second, 0 means unlimited")
	registerPoolFlags(f, &cfg.Pool)

	return cmd
}

func serve(ctx context.Context, cfg *config.Configuration) error {
	log := zap.S().Named("serve")

	sched := scheduler.NewScheduler(
		scheduler.WithMaxWorkers(cfg.Pool.MaxWorkers),
		scheduler.WithIdleTimeout(cfg.Pool.IdleTimeout),
	)
	defer sched.Close()

	h := handlers.New(sched)
	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// in-flight searches keep running during the graceful shutdown
		if err := srv.Start(context.WithoutCancel(gctx)); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped with error", "error", err)
		return err
	}

	log.Info("server stopped")
	return nil
}
