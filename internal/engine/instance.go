package engine

import (
	"cmp"
	"slices"

	"github.com/arloliu/teamsplit/types"
)

// Instance is a quantized, partitioned problem ready for the greedy and
// exact stages. It is read-only after construction and may be shared by
// several solves of the same problem.
type Instance struct {
	teams []Team

	// free holds free items in input order; items holds them sorted by
	// weight descending with ties in input order.
	free  []WorkItem
	items []WorkItem

	totalWeight int
	maxFixed    int
}

// NewInstance quantizes and partitions a validated problem.
//
// Parameters:
//   - problem: Problem with TeamCount >= 1 and Quantum >= 1
//
// Returns:
//   - *Instance: Prepared instance
func NewInstance(problem types.Problem) *Instance {
	teams, free := Partition(problem.Jobs, problem.TeamCount, problem.Quantum)

	items := slices.Clone(free)
	slices.SortStableFunc(items, func(a, b WorkItem) int {
		return cmp.Compare(b.Weight, a.Weight)
	})

	in := &Instance{
		teams: teams,
		free:  free,
		items: items,
	}

	for _, t := range teams {
		in.totalWeight += t.FixedWeight
		in.maxFixed = max(in.maxFixed, t.FixedWeight)
	}
	for _, it := range free {
		in.totalWeight += it.Weight
	}

	return in
}

// TeamCount returns the number of teams.
func (in *Instance) TeamCount() int {
	return len(in.teams)
}

// Teams returns the pinned workload of every team.
func (in *Instance) Teams() []Team {
	return in.teams
}

// FreeItems returns the free items in input order.
func (in *Instance) FreeItems() []WorkItem {
	return in.free
}

// SortedItems returns the free items in search order (weight descending, stable).
func (in *Instance) SortedItems() []WorkItem {
	return in.items
}

// FixedCount returns the number of pinned jobs.
func (in *Instance) FixedCount() int {
	n := 0
	for _, t := range in.teams {
		n += len(t.FixedJobs)
	}

	return n
}

// TotalWeight returns the sum of all pinned and free weights.
func (in *Instance) TotalWeight() int {
	return in.totalWeight
}

// LowerBound returns the static makespan lower bound:
// max(ceil(totalWeight/teamCount), largest pinned weight).
func (in *Instance) LowerBound() int {
	n := len(in.teams)

	return max((in.totalWeight+n-1)/n, in.maxFixed)
}

// initialLoads returns a fresh load vector seeded with pinned weights.
func (in *Instance) initialLoads() []int {
	loads := make([]int, len(in.teams))
	for i, t := range in.teams {
		loads[i] = t.FixedWeight
	}

	return loads
}

// Evaluate computes the makespan of a free-item assignment.
//
// Parameters:
//   - assignment: Free items per team, 0-based team index
//
// Returns:
//   - Solution: The assignment with its makespan in weight units
func (in *Instance) Evaluate(assignment [][]WorkItem) Solution {
	loads := in.initialLoads()
	for t, list := range assignment {
		for _, it := range list {
			loads[t] += it.Weight
		}
	}

	return Solution{Makespan: slices.Max(loads), Assignment: assignment}
}
