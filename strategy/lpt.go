package strategy

import (
	"context"

	"github.com/arloliu/teamsplit/types"
)

// LPT implements longest-processing-time-first greedy assignment.
type LPT struct{}

var _ types.AssignmentStrategy = (*LPT)(nil)

// NewLPT creates a new LPT strategy.
//
// The strategy places free jobs in descending weight order, each on the
// currently least-loaded team (lowest index on ties). It is the baseline the
// exact search starts from.
//
// Returns:
//   - *LPT: Initialized LPT strategy
//
// Example:
//
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithStrategy(strategy.NewLPT()))
func NewLPT() *LPT {
	return &LPT{}
}

// Name returns "lpt".
func (l *LPT) Name() string {
	return NameLPT
}

// Assign calculates a greedy LPT plan.
//
// Parameters:
//   - ctx: Unused; LPT never blocks
//   - problem: Jobs, team count and quantum
//
// Returns:
//   - types.Plan: Greedy plan; MakespanWeight equals BaselineMakespanWeight
//   - error: ErrNoTeams when TeamCount < 1
func (l *LPT) Assign(_ context.Context, problem types.Problem) (types.Plan, error) {
	in, err := prepare(problem)
	if err != nil {
		return types.Plan{}, err
	}

	sol := in.Greedy()

	return types.Plan{
		Teams:                  in.Assemble(sol),
		MakespanWeight:         sol.Makespan,
		BaselineMakespanWeight: sol.Makespan,
		Stats:                  baselineStats(in, sol),
	}, nil
}
