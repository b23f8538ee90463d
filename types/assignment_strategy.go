package types

import "context"

// AssignmentStrategy distributes a problem's jobs across its teams.
//
// Strategies implement different assignment algorithms:
//   - BranchAndBound: Exact minimum-makespan search seeded by LPT
//   - LPT: Longest-processing-time greedy only
//   - RoundRobin: Naive round-robin of free jobs
//
// Strategy implementations should:
//   - Be deterministic (same input → same output)
//   - Never move a pinned job off its team
//   - Respect ctx as a time budget and return their best plan when it expires
//   - Be stateless (safe for concurrent use)
type AssignmentStrategy interface {
	// Name returns the registry name of the strategy (e.g., "exact").
	Name() string

	// Assign calculates a team assignment for the given problem.
	//
	// The problem is assumed to be validated: TeamCount >= 1, Quantum >= 1,
	// positive durations.
	//
	// Parameters:
	//   - ctx: Context bounding the search time
	//   - problem: Validated problem to solve
	//
	// Returns:
	//   - Plan: One TeamPlan per team, in team order
	//   - error: Assignment error (e.g., ErrNoTeams)
	Assign(ctx context.Context, problem Problem) (Plan, error)
}
