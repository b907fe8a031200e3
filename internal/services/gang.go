package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kubev2v/search-task-gang/internal/models"
)

// CycleHook is called after every cycle with its index and stats.
type CycleHook func(cycle int, stats models.RunStats)

// TaskGang runs a sequence of input cycles through a Dispatcher.
// A cycle starts once the previous one has drained all of its results.
type TaskGang struct {
	dispatcher *Dispatcher
	cycles     [][]models.Input
	onCycle    CycleHook
}

func NewTaskGang(d *Dispatcher, cycles ...[]models.Input) *TaskGang {
	return &TaskGang{
		dispatcher: d,
		cycles:     cycles,
	}
}

// OnCycle registers a hook called after each cycle.
func (g *TaskGang) OnCycle(hook CycleHook) *TaskGang {
	g.onCycle = hook
	return g
}

// Run runs every cycle and returns the stats of the cycles that ran.
func (g *TaskGang) Run(ctx context.Context) ([]models.RunStats, error) {
	all := make([]models.RunStats, 0, len(g.cycles))

	for i, inputs := range g.cycles {
		zap.S().Named("task_gang").Debugw("starting cycle", "cycle", i, "inputs", len(inputs))

		stats, err := g.dispatcher.Run(ctx, inputs)
		all = append(all, stats)
		if g.onCycle != nil {
			g.onCycle(i, stats)
		}
		if err != nil {
			return all, fmt.Errorf("cycle %d: %w", i, err)
		}
	}

	return all, nil
}
