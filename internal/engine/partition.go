package engine

import "github.com/arloliu/teamsplit/types"

// WorkItem is a job as seen by the search.
type WorkItem struct {
	Name    string
	Minutes int
	Weight  int

	// Order is the job's position in the caller's input, used for tie-breaks.
	Order int

	// Fixed is true for jobs pinned by the caller.
	Fixed bool
}

// Team is a team's pinned workload.
type Team struct {
	// Index is the 1-based team number.
	Index        int
	FixedMinutes int
	FixedWeight  int
	FixedJobs    []WorkItem
}

// Partition splits jobs into per-team pinned loads and a free item list.
//
// Jobs whose FixedTeam lies in [1, teamCount] are appended to that team's
// pinned list; every other job becomes a free item. Free items keep input
// order.
//
// Parameters:
//   - jobs: Input jobs
//   - teamCount: Number of teams (>= 1)
//   - quantum: Rounding granularity in minutes
//
// Returns:
//   - []Team: One entry per team, 0-based slice index = Index-1
//   - []WorkItem: Free items in input order
func Partition(jobs []types.Job, teamCount, quantum int) ([]Team, []WorkItem) {
	teams := make([]Team, teamCount)
	for i := range teams {
		teams[i].Index = i + 1
	}

	free := make([]WorkItem, 0, len(jobs))
	for order, job := range jobs {
		item := WorkItem{
			Name:    job.Name,
			Minutes: job.DurationMinutes,
			Weight:  Weight(job.DurationMinutes, quantum),
			Order:   order,
		}

		if !job.PinnedTo(teamCount) {
			free = append(free, item)
			continue
		}

		item.Fixed = true
		team := &teams[job.FixedTeam-1]
		team.FixedJobs = append(team.FixedJobs, item)
		team.FixedMinutes += job.DurationMinutes
	}

	for i := range teams {
		teams[i].FixedWeight = FixedWeight(teams[i].FixedMinutes, quantum)
	}

	return teams, free
}
