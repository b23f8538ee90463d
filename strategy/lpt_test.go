package strategy

import (
	"testing"

	"github.com/arloliu/teamsplit/types"
	"github.com/stretchr/testify/require"
)

func TestLPT_Assign(t *testing.T) {
	t.Run("places longest jobs first on the lightest team", func(t *testing.T) {
		strategy := NewLPT()
		problem := types.Problem{Jobs: jobs(30, 30, 20, 20, 20), TeamCount: 2, Quantum: 10}

		plan, err := strategy.Assign(t.Context(), problem)

		require.NoError(t, err)
		requireConserved(t, problem, plan)
		require.Equal(t, []int{70, 50}, teamTotals(plan))
		require.Equal(t, 7, plan.MakespanWeight)
		require.False(t, plan.Stats.Optimal, "lower bound is 6")
		require.Zero(t, plan.Stats.Nodes)
	})

	t.Run("reports optimal when the lower bound is met", func(t *testing.T) {
		strategy := NewLPT()
		problem := types.Problem{Jobs: jobs(40, 40, 40, 40, 40), TeamCount: 3, Quantum: 40}

		plan, err := strategy.Assign(t.Context(), problem)

		require.NoError(t, err)
		require.Equal(t, 2, plan.MakespanWeight)
		require.True(t, plan.Stats.Optimal)
		require.Equal(t, []int{80, 80, 40}, teamTotals(plan))
	})

	t.Run("returns error when no teams available", func(t *testing.T) {
		_, err := NewLPT().Assign(t.Context(), types.Problem{Jobs: jobs(10), TeamCount: -1, Quantum: 1})

		require.ErrorIs(t, err, types.ErrNoTeams)
	})
}
