package strategy

import (
	"testing"

	"github.com/arloliu/teamsplit/types"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	debugMessages []string
	warnMessages  []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) {
	l.debugMessages = append(l.debugMessages, msg)
}

func (l *recordingLogger) Info(string, ...any) {}

func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.warnMessages = append(l.warnMessages, msg)
}

func (l *recordingLogger) Error(string, ...any) {}

func (l *recordingLogger) Fatal(string, ...any) {}

// jobs builds free jobs named j0, j1, ... with the given minutes.
func jobs(minutes ...int) []types.Job {
	out := make([]types.Job, len(minutes))
	for i, m := range minutes {
		out[i] = types.Job{Name: "j" + string(rune('0'+i)), DurationMinutes: m}
	}

	return out
}

func teamTotals(plan types.Plan) []int {
	totals := make([]int, len(plan.Teams))
	for i, t := range plan.Teams {
		totals[i] = t.TotalMinutes
	}

	return totals
}

// requireConserved checks that every input job appears exactly once with its minutes.
func requireConserved(t *testing.T, problem types.Problem, plan types.Plan) {
	t.Helper()

	require.Len(t, plan.Teams, problem.TeamCount)

	seen := make(map[string]int)
	total := 0
	for i, team := range plan.Teams {
		require.Equal(t, i+1, team.Index)

		sum := 0
		for _, j := range team.Jobs {
			seen[j.Name]++
			sum += j.DurationMinutes
		}
		require.Equal(t, sum, team.TotalMinutes)
		total += sum
	}

	require.Len(t, seen, len(problem.Jobs))
	for name, n := range seen {
		require.Equal(t, 1, n, "job %s assigned %d times", name, n)
	}
	require.Equal(t, problem.TotalMinutes(), total)
}
