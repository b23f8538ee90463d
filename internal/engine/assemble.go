package engine

import (
	"cmp"
	"slices"

	"github.com/arloliu/teamsplit/types"
)

// Assemble merges pinned jobs with a solution's free items into per-team plans.
//
// Totals are exact sums of unquantized minutes; weights only ever drive the
// search. Each team's jobs are sorted by minutes descending, ties in input
// order.
//
// Parameters:
//   - sol: Free-item assignment (Greedy, Search or any strategy's output)
//
// Returns:
//   - []types.TeamPlan: One plan per team in index order
func (in *Instance) Assemble(sol Solution) []types.TeamPlan {
	plans := make([]types.TeamPlan, len(in.teams))

	for i, team := range in.teams {
		var free []WorkItem
		if i < len(sol.Assignment) {
			free = sol.Assignment[i]
		}

		merged := make([]WorkItem, 0, len(team.FixedJobs)+len(free))
		merged = append(merged, team.FixedJobs...)
		merged = append(merged, free...)

		slices.SortFunc(merged, func(a, b WorkItem) int {
			if c := cmp.Compare(b.Minutes, a.Minutes); c != 0 {
				return c
			}

			return cmp.Compare(a.Order, b.Order)
		})

		plan := types.TeamPlan{
			Index: team.Index,
			Jobs:  make([]types.JobPlan, len(merged)),
		}
		for j, it := range merged {
			plan.Jobs[j] = types.JobPlan{Name: it.Name, DurationMinutes: it.Minutes, Fixed: it.Fixed}
			plan.TotalMinutes += it.Minutes
		}

		plans[i] = plan
	}

	return plans
}
