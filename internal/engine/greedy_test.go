package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/teamsplit/types"
)

func names(items []WorkItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}

	return out
}

func TestGreedy(t *testing.T) {
	t.Run("least loaded team, lowest index on ties", func(t *testing.T) {
		in := NewInstance(types.Problem{
			Jobs: []types.Job{
				{Name: "a", DurationMinutes: 3},
				{Name: "b", DurationMinutes: 3},
				{Name: "c", DurationMinutes: 2},
				{Name: "d", DurationMinutes: 2},
				{Name: "e", DurationMinutes: 2},
			},
			TeamCount: 2,
			Quantum:   1,
		})

		sol := in.Greedy()

		require.Equal(t, 7, sol.Makespan)
		require.Equal(t, []string{"a", "c", "e"}, names(sol.Assignment[0]))
		require.Equal(t, []string{"b", "d"}, names(sol.Assignment[1]))
	})

	t.Run("stable order for equal weights", func(t *testing.T) {
		in := NewInstance(types.Problem{
			Jobs: []types.Job{
				{Name: "small", DurationMinutes: 1},
				{Name: "first", DurationMinutes: 5},
				{Name: "second", DurationMinutes: 5},
			},
			TeamCount: 1,
			Quantum:   1,
		})

		require.Equal(t, []string{"first", "second", "small"}, names(in.SortedItems()))
		require.Equal(t, []string{"small", "first", "second"}, names(in.FreeItems()))
	})

	t.Run("fixed weight seeds the loads", func(t *testing.T) {
		in := NewInstance(types.Problem{
			Jobs: []types.Job{
				{Name: "pinned", DurationMinutes: 4, FixedTeam: 1},
				{Name: "x", DurationMinutes: 3},
				{Name: "y", DurationMinutes: 1},
			},
			TeamCount: 2,
			Quantum:   1,
		})

		sol := in.Greedy()

		require.Equal(t, 4, sol.Makespan)
		require.Empty(t, sol.Assignment[0])
		require.Equal(t, []string{"x", "y"}, names(sol.Assignment[1]))
	})
}

func TestEvaluate(t *testing.T) {
	in := NewInstance(types.Problem{
		Jobs: []types.Job{
			{Name: "pinned", DurationMinutes: 2, FixedTeam: 2},
			{Name: "x", DurationMinutes: 3},
			{Name: "y", DurationMinutes: 1},
		},
		TeamCount: 2,
		Quantum:   1,
	})
	free := in.FreeItems()

	sol := in.Evaluate([][]WorkItem{{}, {free[0], free[1]}})
	require.Equal(t, 6, sol.Makespan)

	sol = in.Evaluate([][]WorkItem{{free[0]}, {free[1]}})
	require.Equal(t, 3, sol.Makespan)
}
