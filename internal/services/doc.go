// Package services implements the search dispatching logic of search-task-gang.
//
// The services sit between the outer surfaces (CLI, HTTP handlers) and the
// scheduler package. They turn a list of words and a list of inputs into one
// search unit per (input, word) pair and collect the outcomes in the order the
// units finish.
//
// # Service Dependency Graph
//
//	CLI / Handlers
//	    │
//	    ▼
//	Services Layer
//	    ├── TaskGang ────► Dispatcher (one Run per cycle)
//	    └── Dispatcher ──► Scheduler, CompletionQueue, SearchFunc, ResultSink
//
// # Dispatcher
//
// A run over I inputs and W words goes through the following states:
//
//	┌────────────┐    ┌────────────┐    ┌──────────┐    ┌──────┐
//	│ NotStarted │───►│ Scheduling │───►│ Draining │───►│ Done │
//	└────────────┘    └────────────┘    └──────────┘    └──────┘
//
// Scheduling: every input is handed to the scheduler as its own work, which
// calls the InputDispatcher hook (the Dispatcher itself by default). The hook
// submits W search units to the run's CompletionQueue.
//
// Draining: the Dispatcher takes exactly N = I×W futures from the queue. Each
// future is resolved to a models.Outcome:
//
//	┌────────────────────────────┬────────────────────┐
//	│ Future result              │ Outcome            │
//	├────────────────────────────┼────────────────────┤
//	│ no error                   │ success            │
//	│ search function error      │ failure/search     │
//	│ search function panic      │ failure/panic      │
//	│ pool closed before running │ failure/canceled   │
//	│ future not readable        │ failure/resolution │
//	└────────────────────────────┴────────────────────┘
//
// Failures are logged and forwarded to the sink like successes; they never
// stop the drain. Outcomes reach the sink in completion order, which differs
// from run to run.
//
// The N count assumes the hook submits exactly one unit per word. A hook
// submitting fewer units makes the drain block until ctx is done; Run then
// returns the context error with the stats gathered so far.
//
// Usage:
//
//	sched := scheduler.NewScheduler()
//	defer sched.Close()
//
//	d := services.NewDispatcher(sched, []string{"the", "fox"},
//	    services.WithSink(printer))
//	stats, err := d.Run(ctx, []models.Input{
//	    {ID: "input-0", Text: "the quick fox"},
//	    {ID: "input-1", Text: "no match here"},
//	})
//
// # TaskGang
//
// TaskGang runs several input cycles through one Dispatcher, one after the
// other, and collects the stats of each cycle.
//
// # Thread Safety
//
// A Dispatcher runs one run at a time and returns RunInProgressError
// otherwise. The sink is only called from the goroutine calling Run. Search
// units share no state, the search function needs no locking.
package services
