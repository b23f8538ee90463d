package engine

import (
	"cmp"
	"context"
	"math"
	"slices"
	"time"

	"github.com/arloliu/teamsplit/types"
)

// ctxCheckInterval is how many nodes are expanded between context checks.
const ctxCheckInterval = 1024

// Budget bounds the exact search. The zero value means "no node ceiling";
// time limits are expressed through the context passed to Search.
type Budget struct {
	// MaxNodes caps the number of expanded nodes (0 = unlimited).
	MaxNodes int64

	// MaxStates caps the number of memoized states (0 = unlimited).
	// Past the ceiling the search keeps going without recording new states.
	MaxStates int64
}

// search is the state owned by one Search call chain.
type search struct {
	ctx       context.Context
	items     []WorkItem
	lowerBnd  int
	maxNodes  int64
	loads     []int
	lists     [][]WorkItem
	visited   *visitedSet
	best      Solution
	order     [][]int // per-depth candidate buffers
	stats     types.SearchStats
	exhausted bool
}

// Search runs the branch-and-bound search for an assignment whose makespan
// is strictly smaller than the seed's.
//
// The search descends one free item per level in search order. At each node
// it prunes when max(static lower bound, current max load) cannot beat the
// incumbent, prunes states already explored at the same depth, tries
// candidate teams in ascending load order while skipping teams whose load
// equals one already tried, and rejects placements that would reach the
// incumbent makespan. Equal-makespan alternatives never replace the
// incumbent.
//
// When ctx is done or the node budget is spent the search unwinds and the
// best incumbent found so far is returned with Stats.Exhausted set.
//
// Parameters:
//   - ctx: Cancellation and deadline for the search
//   - seed: Initial incumbent, normally the Greedy baseline
//   - budget: Node and memo-state ceilings
//
// Returns:
//   - Solution: Best solution found (seed if nothing better exists)
//   - types.SearchStats: Counters describing the search
func (in *Instance) Search(ctx context.Context, seed Solution, budget Budget) (Solution, types.SearchStats) {
	start := time.Now()

	s := &search{
		ctx:      ctx,
		items:    in.items,
		lowerBnd: in.LowerBound(),
		maxNodes: budget.MaxNodes,
		loads:    in.initialLoads(),
		lists:    make([][]WorkItem, len(in.teams)),
		visited:  newVisitedSet(len(in.teams), int(min(budget.MaxStates, math.MaxInt32))),
		best:     seed,
		order:    make([][]int, len(in.items)),
	}
	for i := range s.order {
		s.order[i] = make([]int, len(in.teams))
	}

	s.descend(0)

	s.stats.Elapsed = time.Since(start)
	s.stats.States = int64(s.visited.len())
	s.stats.Exhausted = s.exhausted
	s.stats.Optimal = !s.exhausted

	return s.best, s.stats
}

func (s *search) descend(idx int) {
	if s.spent() {
		return
	}
	s.stats.Nodes++

	current := slices.Max(s.loads)
	if max(s.lowerBnd, current) >= s.best.Makespan {
		s.stats.BoundPrunes++
		return
	}

	if idx == len(s.items) {
		s.best = Solution{Makespan: current, Assignment: cloneAssignment(s.lists)}
		s.stats.Improvements++

		return
	}

	if !s.visited.insert(idx, s.loads) {
		s.stats.MemoPrunes++
		return
	}

	item := s.items[idx]
	candidates := s.candidates(idx)

	for i, team := range candidates {
		load := s.loads[team]
		if i > 0 && load == s.loads[candidates[i-1]] {
			s.stats.SymmetrySkips++
			continue
		}

		// candidates ascend by load, so no later team can fit either
		if load+item.Weight >= s.best.Makespan {
			break
		}

		s.loads[team] += item.Weight
		s.lists[team] = append(s.lists[team], item)

		s.descend(idx + 1)

		s.lists[team] = s.lists[team][:len(s.lists[team])-1]
		s.loads[team] -= item.Weight

		if s.exhausted {
			return
		}
	}
}

// candidates returns team indices ordered by ascending load, lowest index first on ties.
func (s *search) candidates(idx int) []int {
	order := s.order[idx]
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(s.loads[a], s.loads[b])
	})

	return order
}

// spent reports whether the budget is exhausted, latching the result.
func (s *search) spent() bool {
	if s.exhausted {
		return true
	}

	if s.maxNodes > 0 && s.stats.Nodes >= s.maxNodes {
		s.exhausted = true
		return true
	}

	if s.stats.Nodes%ctxCheckInterval == 0 && s.ctx.Err() != nil {
		s.exhausted = true
		return true
	}

	return false
}
