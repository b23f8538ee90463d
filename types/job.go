package types

// MaxJobMinutes is the largest duration a single job may carry.
//
// It keeps per-team sums and search weights far from int overflow.
const MaxJobMinutes = 1<<31 - 1

// Job is a discrete unit of work to place on a team.
//
// Jobs are immutable once handed to a Solver or strategy.
type Job struct {
	// Name identifies the job in results (e.g., a street address).
	Name string `json:"name" yaml:"name"`

	// DurationMinutes is the job's workload in whole minutes.
	// A zero value means "resolve through the duration lookup table".
	DurationMinutes int `json:"durationMinutes" yaml:"durationMinutes"`

	// FixedTeam pins the job to a 1-based team index. 0 means the job is free.
	// Values outside [1, teamCount] are treated as free.
	FixedTeam int `json:"fixedTeam,omitempty" yaml:"fixedTeam,omitempty"`
}

// PinnedTo reports whether the job is pinned to a valid team for the given team count.
//
// Parameters:
//   - teamCount: Number of teams in the problem
//
// Returns:
//   - bool: true if FixedTeam is within [1, teamCount]
func (j Job) PinnedTo(teamCount int) bool {
	return j.FixedTeam >= 1 && j.FixedTeam <= teamCount
}

// Problem is the input of an assignment strategy.
type Problem struct {
	// Jobs is the ordered job list. Input order drives every tie-break.
	Jobs []Job `json:"jobs" yaml:"jobs"`

	// TeamCount is the number of identical teams (>= 1).
	TeamCount int `json:"teamCount" yaml:"teamCount"`

	// Quantum is the rounding granularity in minutes (>= 1).
	Quantum int `json:"quantum" yaml:"quantum"`
}

// TotalMinutes returns the exact sum of all job durations.
func (p Problem) TotalMinutes() int {
	total := 0
	for _, j := range p.Jobs {
		total += j.DurationMinutes
	}

	return total
}
