package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/teamsplit/types"
)

func sampleResult() *types.Result {
	return &types.Result{
		Plan: types.Plan{
			Teams: []types.TeamPlan{
				{Index: 1, TotalMinutes: 150, Jobs: []types.JobPlan{
					{Name: "12 Oak St", DurationMinutes: 100, Fixed: true},
					{Name: "3 Elm Ave", DurationMinutes: 50},
				}},
				{Index: 2, TotalMinutes: 100, Jobs: []types.JobPlan{
					{Name: "7 Pine Rd", DurationMinutes: 50},
					{Name: "9 Birch Ln", DurationMinutes: 50},
				}},
				{Index: 3},
			},
			MakespanWeight:         15,
			BaselineMakespanWeight: 15,
			Stats:                  types.SearchStats{Nodes: 12, Elapsed: 1500 * time.Microsecond, Optimal: true},
		},
		ID:              "abc",
		Strategy:        "exact",
		Quantum:         10,
		MakespanMinutes: 150,
		GapMinutes:      150,
	}
}

func TestPlan(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Plan(&buf, sampleResult()))

	out := buf.String()
	require.Contains(t, out, "Plan abc")
	require.Contains(t, out, "Team")
	require.Contains(t, out, "12 Oak St (1h 40m, fixed)")
	require.Contains(t, out, "3 Elm Ave (50m)")
	require.Contains(t, out, "2h 30m")
	require.Contains(t, out, "1h 40m")
	require.Contains(t, out, "makespan 2h 30m")
}

func TestSummary(t *testing.T) {
	res := sampleResult()
	require.Equal(t, "strategy exact, quantum 10m, makespan 2h 30m, gap 2h 30m, optimal, 12 nodes in 1.5ms", Summary(res))

	res.Stats = types.SearchStats{Exhausted: true}
	require.Equal(t, "strategy exact, quantum 10m, makespan 2h 30m, gap 2h 30m, budget exhausted", Summary(res))
}
