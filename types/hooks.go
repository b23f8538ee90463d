package types

import "context"

// Hooks defines callbacks for Solver events.
//
// All hooks are optional and called synchronously after the solve completes,
// before Solve returns. Hook errors are logged but never fail the solve.
//
// Best practices for hook implementation:
//   - Complete quickly (they delay the caller)
//   - Respect context cancellation
//   - Handle errors gracefully (return error for logging)
//
// Example:
//
//	hooks := &teamsplit.Hooks{
//	    OnSolved: func(ctx context.Context, res teamsplit.Result) error {
//	        return notify(ctx, res.ID, res.MakespanMinutes)
//	    },
//	}
type Hooks struct {
	// OnSolved is called after every successful solve.
	OnSolved func(ctx context.Context, result Result) error

	// OnBudgetExhausted is called when the search stopped before proving optimality.
	OnBudgetExhausted func(ctx context.Context, stats SearchStats) error

	// OnError is called when a recoverable error occurs (e.g., history persistence).
	OnError func(ctx context.Context, err error) error
}
