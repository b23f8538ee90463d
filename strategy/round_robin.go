package strategy

import (
	"context"

	"github.com/arloliu/teamsplit/internal/engine"
	"github.com/arloliu/teamsplit/types"
)

// RoundRobin implements simple round-robin job assignment.
type RoundRobin struct{}

var _ types.AssignmentStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy deals free jobs across teams in input order, ignoring their
// durations. Pinned jobs stay on their team. It provides a predictable
// reference point but no balance guarantee.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	s := strategy.NewRoundRobin()
//	plan, err := s.Assign(ctx, problem)
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Name returns "round-robin".
func (rr *RoundRobin) Name() string {
	return NameRoundRobin
}

// Assign calculates job assignments using round-robin distribution.
//
// The algorithm:
//  1. Partition pinned jobs onto their teams
//  2. Deal free jobs to teams 1..n, 1..n, ... in input order
//
// Parameters:
//   - ctx: Unused; round-robin never blocks
//   - problem: Jobs, team count and quantum
//
// Returns:
//   - types.Plan: Round-robin plan; BaselineMakespanWeight is the LPT makespan for comparison
//   - error: ErrNoTeams when TeamCount < 1
func (rr *RoundRobin) Assign(_ context.Context, problem types.Problem) (types.Plan, error) {
	in, err := prepare(problem)
	if err != nil {
		return types.Plan{}, err
	}

	assignment := make([][]engine.WorkItem, in.TeamCount())
	for i, it := range in.FreeItems() {
		team := i % in.TeamCount()
		assignment[team] = append(assignment[team], it)
	}

	sol := in.Evaluate(assignment)

	return types.Plan{
		Teams:                  in.Assemble(sol),
		MakespanWeight:         sol.Makespan,
		BaselineMakespanWeight: in.Greedy().Makespan,
		Stats:                  baselineStats(in, sol),
	}, nil
}
