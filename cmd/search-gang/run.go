package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/search-task-gang/internal/config"
	"github.com/kubev2v/search-task-gang/internal/models"
	"github.com/kubev2v/search-task-gang/internal/output"
	"github.com/kubev2v/search-task-gang/internal/services"
	"github.com/kubev2v/search-task-gang/internal/util"
	srvErrors "github.com/kubev2v/search-task-gang/pkg/errors"
	"github.com/kubev2v/search-task-gang/pkg/scheduler"
)

func newRunCmd(cfg *config.Configuration) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search the words in the inputs and print the results as they finish",
		Example: `  search-gang run -w the -w fox -i "the quick fox" -i "no match here"
  search-gang run -w error --input-file app.log --input-file db.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			colored := cfg.Output.Color && !noColor && !color.NoColor
			return runSearch(ctx, cmd.OutOrStdout(), cfg, colored)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&cfg.Search.Words, "word", "w", cfg.Search.Words, "word to search, repeatable")
	f.StringArrayVarP(&cfg.Search.Inputs, "input", "i", cfg.Search.Inputs, "inline input text, repeatable; all inline inputs form one cycle")
	f.StringSliceVar(&cfg.Search.InputFiles, "input-file", cfg.Search.InputFiles, "file with one input per line, repeatable; each file is one cycle")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")
	registerPoolFlags(f, &cfg.Pool)

	return cmd
}

func runSearch(ctx context.Context, w io.Writer, cfg *config.Configuration, colored bool) error {
	if err := services.ValidateWords(cfg.Search.Words); err != nil {
		return err
	}

	cycles, err := buildCycles(cfg.Search)
	if err != nil {
		return err
	}

	sched := scheduler.NewScheduler(
		scheduler.WithMaxWorkers(cfg.Pool.MaxWorkers),
		scheduler.WithIdleTimeout(cfg.Pool.IdleTimeout),
	)
	defer sched.Close()

	printer := output.NewPrinter(w, colored)
	d := services.NewDispatcher(sched, cfg.Search.Words, services.WithSink(printer))

	all, err := services.NewTaskGang(d, cycles...).OnCycle(printer.Summary).Run(ctx)
	if err != nil {
		return err
	}

	failed := 0
	for _, stats := range all {
		failed += stats.Failed
	}
	zap.S().Named("run").Infow("search finished", "cycles", len(all), "failed", failed)

	return nil
}

// buildCycles turns the inline inputs into one cycle and every input file
// into its own cycle, inline inputs first.
func buildCycles(search config.Search) ([][]models.Input, error) {
	var cycles [][]models.Input

	if len(search.Inputs) > 0 {
		cycles = append(cycles, util.InputsFromStrings(search.Inputs))
	}

	for _, path := range search.InputFiles {
		inputs, err := util.ReadInputFile(path)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, inputs)
	}

	if len(cycles) == 0 {
		return nil, srvErrors.NewValidationError("at least one --input or --input-file is required")
	}

	return cycles, nil
}
