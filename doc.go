// Package teamsplit provides a Go library for splitting a list of timed jobs
// across a fixed number of identical teams so the busiest team finishes as
// early as possible.
//
// Jobs carry a name, a duration in minutes and an optional pinned team.
// Pinned jobs stay where they are; free jobs are placed by an assignment
// strategy. The default strategy is exact: it quantizes durations, builds an
// LPT baseline and runs a bounded branch-and-bound search for the minimum
// makespan.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/arloliu/teamsplit"
//
//	cfg := teamsplit.DefaultConfig()
//	solver, err := teamsplit.NewSolver(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := solver.Solve(ctx, teamsplit.Problem{
//	    Jobs: []teamsplit.Job{
//	        {Name: "12 Oak St", DurationMinutes: 90},
//	        {Name: "3 Elm Ave", DurationMinutes: 45, FixedTeam: 1},
//	        {Name: "7 Pine Rd", DurationMinutes: 60},
//	    },
//	    TeamCount: 2,
//	    Quantum:   15,
//	})
//
// # Key Features
//
//   - Exact Search: Minimum makespan in quantized units, with a proof of optimality when the budget allows
//   - Bounded Time: Node ceiling and timeout; an exhausted search still returns its best plan
//   - Pinned Jobs: Jobs can be fixed to a team and are never moved
//   - Duration Lookup: Jobs without a duration are resolved from a cached name table
//   - History: Solves can be persisted to memory or a NATS JetStream KV bucket
//
// # Quantization
//
// Durations are divided by the quantum and rounded half up, with every job
// weighing at least one unit. A larger quantum makes the search faster and
// the result coarser. Team totals in results are always exact minutes.
//
// # Advanced Usage
//
// Custom strategy, history and hooks:
//
//	import (
//	    "github.com/arloliu/teamsplit"
//	    "github.com/arloliu/teamsplit/history"
//	    "github.com/arloliu/teamsplit/strategy"
//	)
//
//	hooks := &teamsplit.Hooks{
//	    OnBudgetExhausted: func(ctx context.Context, stats teamsplit.SearchStats) error {
//	        log.Printf("search stopped after %d nodes", stats.Nodes)
//	        return nil
//	    },
//	}
//
//	solver, err := teamsplit.NewSolver(&cfg,
//	    teamsplit.WithStrategy(strategy.NewBranchAndBound(strategy.WithMaxNodes(1_000_000))),
//	    teamsplit.WithHistory(history.NewMemory()),
//	    teamsplit.WithHooks(hooks),
//	)
//
// See the examples/ directory for complete working examples.
package teamsplit
