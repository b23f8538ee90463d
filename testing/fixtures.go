package testing

import (
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/teamsplit/types"
)

// Jobs builds free jobs named job-0, job-1, ... with the given durations.
func Jobs(minutes ...int) []types.Job {
	jobs := make([]types.Job, len(minutes))
	for i, m := range minutes {
		jobs[i] = types.Job{Name: fmt.Sprintf("job-%d", i), DurationMinutes: m}
	}

	return jobs
}

// RandomProblem builds a reproducible problem with n jobs between 15 and 240
// minutes, roughly one in six pinned to a random team.
//
// Parameters:
//   - seed: Random seed; equal seeds give equal problems
//   - n: Number of jobs
//   - teams: Team count
//   - quantum: Quantum in minutes
func RandomProblem(seed uint64, n, teams, quantum int) types.Problem {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	jobs := make([]types.Job, n)
	for i := range jobs {
		jobs[i] = types.Job{
			Name:            fmt.Sprintf("site-%03d", i),
			DurationMinutes: 15 + rng.IntN(226),
		}
		if rng.IntN(6) == 0 {
			jobs[i].FixedTeam = 1 + rng.IntN(teams)
		}
	}

	return types.Problem{Jobs: jobs, TeamCount: teams, Quantum: quantum}
}
