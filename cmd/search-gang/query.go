package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/search-task-gang/internal/config"
	"github.com/kubev2v/search-task-gang/internal/models"
	"github.com/kubev2v/search-task-gang/internal/output"
	"github.com/kubev2v/search-task-gang/internal/services"
	"github.com/kubev2v/search-task-gang/pkg/client"
)

func newQueryCmd(cfg *config.Configuration) *cobra.Command {
	var (
		serverURL string
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:     "query",
		Short:   "Run a search on a search-gang server",
		Example: `  search-gang query --server http://localhost:8000 -w the -w fox -i "the quick fox"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			colored := cfg.Output.Color && !noColor && !color.NoColor
			return query(ctx, cmd.OutOrStdout(), client.NewClient(serverURL), cfg.Search, colored)
		},
	}

	f := cmd.Flags()
	f.StringVar(&serverURL, "server", "http://localhost:8000", "base URL of the search-gang server")
	f.StringSliceVarP(&cfg.Search.Words, "word", "w", cfg.Search.Words, "word to search, repeatable")
	f.StringArrayVarP(&cfg.Search.Inputs, "input", "i", cfg.Search.Inputs, "inline input text, repeatable")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// query prints the results first and the failures after them, the server
// returns them as separate lists.
func query(ctx context.Context, w io.Writer, cl *client.Client, search config.Search, colored bool) error {
	if err := services.ValidateWords(search.Words); err != nil {
		return err
	}

	resp, err := cl.Search(ctx, search.Words, search.Inputs)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(w, colored)
	for _, r := range resp.Results {
		printer.Consume(ctx, models.NewSuccessOutcome(r.ToModel()))
	}
	for _, f := range resp.Failures {
		printer.Consume(ctx, models.NewFailureOutcome(f.ToModel()))
	}
	printer.Summary(0, resp.Stats.ToModel(resp.Id))

	return nil
}
