// Package output prints search outcomes and run summaries to a terminal.
package output

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/kubev2v/search-task-gang/internal/models"
)

// Printer is a models.ResultSink writing one line per outcome.
type Printer struct {
	w       io.Writer
	mu      sync.Mutex
	found   *color.Color
	missing *color.Color
	failure *color.Color
	label   *color.Color
}

func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:       w,
		found:   color.New(color.FgGreen),
		missing: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
		label:   color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.found, p.missing, p.failure, p.label} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) Consume(_ context.Context, o models.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !o.IsSuccess() {
		f := o.Failure
		fmt.Fprintf(p.w, "%s %s\n", p.failure.Sprint("FAIL"), f.Error())
		return
	}

	r := o.Result
	if !r.Found() {
		fmt.Fprintf(p.w, "%s %q in %s: %s\n", p.label.Sprint("word"), r.Word, r.InputID, p.missing.Sprint("not found"))
		return
	}
	fmt.Fprintf(p.w, "%s %q in %s: %s %v\n", p.label.Sprint("word"), r.Word, r.InputID, p.found.Sprint("found at"), r.Positions)
}

// Summary prints the stats of one cycle.
func (p *Printer) Summary(cycle int, stats models.RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := p.found.Sprint("ok")
	if stats.Failed > 0 {
		status = p.failure.Sprintf("%d failed", stats.Failed)
	}
	fmt.Fprintf(p.w, "cycle %d: %d inputs x %d words = %d results (%d succeeded, %s) in %s\n",
		cycle, stats.Inputs, stats.Words, stats.Drained, stats.Succeeded, status, stats.Duration)
}
