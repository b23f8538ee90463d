package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/teamsplit/types"
)

func TestPartition(t *testing.T) {
	jobs := []types.Job{
		{Name: "a", DurationMinutes: 60, FixedTeam: 2},
		{Name: "b", DurationMinutes: 30},
		{Name: "c", DurationMinutes: 45, FixedTeam: 5}, // out of range → free
		{Name: "d", DurationMinutes: 15, FixedTeam: 2},
		{Name: "e", DurationMinutes: 20, FixedTeam: -1},
	}

	teams, free := Partition(jobs, 3, 15)

	require.Len(t, teams, 3)
	for i, team := range teams {
		require.Equal(t, i+1, team.Index)
	}

	require.Empty(t, teams[0].FixedJobs)
	require.Equal(t, 0, teams[0].FixedWeight)

	require.Len(t, teams[1].FixedJobs, 2)
	require.Equal(t, "a", teams[1].FixedJobs[0].Name)
	require.Equal(t, "d", teams[1].FixedJobs[1].Name)
	require.True(t, teams[1].FixedJobs[0].Fixed)
	require.Equal(t, 75, teams[1].FixedMinutes)
	require.Equal(t, 5, teams[1].FixedWeight)

	names := make([]string, len(free))
	for i, it := range free {
		names[i] = it.Name
		require.False(t, it.Fixed)
	}
	require.Equal(t, []string{"b", "c", "e"}, names, "free items keep input order")
	require.Equal(t, []int{1, 2, 4}, []int{free[0].Order, free[1].Order, free[2].Order})
	require.Equal(t, []int{2, 3, 1}, []int{free[0].Weight, free[1].Weight, free[2].Weight})
}

func TestPartition_FixedWeightForcedToOne(t *testing.T) {
	jobs := []types.Job{{Name: "short", DurationMinutes: 5, FixedTeam: 1}}

	teams, free := Partition(jobs, 2, 60)

	require.Empty(t, free)
	require.Equal(t, 1, teams[0].FixedWeight)
	require.Equal(t, 0, teams[1].FixedWeight)
}
