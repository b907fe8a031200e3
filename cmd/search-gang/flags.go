package main

import (
	"github.com/spf13/pflag"

	"github.com/kubev2v/search-task-gang/internal/config"
)

func registerPoolFlags(f *pflag.FlagSet, pool *config.Pool) {
	f.IntVar(&pool.MaxWorkers, "max-workers", pool.MaxWorkers, "maximum number of live workers, 0 means unbounded")
	f.DurationVar(&pool.IdleTimeout, "idle-timeout", pool.IdleTimeout, "idle time after which a worker is released")
}
