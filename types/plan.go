package types

import "time"

// JobPlan is a job as it appears in a team's output list.
type JobPlan struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`

	// Fixed is true when the job was pinned to this team by the caller.
	Fixed bool `json:"fixed,omitempty"`
}

// TeamPlan is the final workload of one team.
type TeamPlan struct {
	// Index is the 1-based team number.
	Index int `json:"index"`

	// Jobs is sorted by DurationMinutes descending, ties in input order.
	Jobs []JobPlan `json:"jobs"`

	// TotalMinutes is the exact, unquantized sum of job durations.
	TotalMinutes int `json:"totalMinutes"`
}

// SearchStats describes the work done by an exact search.
type SearchStats struct {
	Nodes         int64         `json:"nodes"`
	BoundPrunes   int64         `json:"boundPrunes"`
	MemoPrunes    int64         `json:"memoPrunes"`
	SymmetrySkips int64         `json:"symmetrySkips"`
	Improvements  int64         `json:"improvements"`
	States        int64         `json:"states"`
	Elapsed       time.Duration `json:"elapsed"`

	// Exhausted is true when the node or time budget stopped the search early.
	Exhausted bool `json:"exhausted"`

	// Optimal is true when the search proved no better assignment exists.
	Optimal bool `json:"optimal"`
}

// Plan is the output of an AssignmentStrategy.
type Plan struct {
	Teams []TeamPlan `json:"teams"`

	// MakespanWeight is the busiest team's load in quantized units.
	MakespanWeight int `json:"makespanWeight"`

	// BaselineMakespanWeight is the greedy (LPT) makespan the search started from.
	BaselineMakespanWeight int `json:"baselineMakespanWeight"`

	Stats SearchStats `json:"stats"`
}

// LongestTeamMinutes returns the largest team total in exact minutes.
func (p Plan) LongestTeamMinutes() int {
	largest := 0
	for _, t := range p.Teams {
		largest = max(largest, t.TotalMinutes)
	}

	return largest
}

// SpreadMinutes returns the spread between the busiest and the idlest team.
func (p Plan) SpreadMinutes() int {
	if len(p.Teams) == 0 {
		return 0
	}

	lo, hi := p.Teams[0].TotalMinutes, p.Teams[0].TotalMinutes
	for _, t := range p.Teams[1:] {
		lo = min(lo, t.TotalMinutes)
		hi = max(hi, t.TotalMinutes)
	}

	return hi - lo
}

// Result is a Plan enriched with solve metadata by the Solver.
type Result struct {
	Plan

	// ID identifies the solve in the history store.
	ID string `json:"id"`

	// Strategy is the name of the strategy that produced the plan.
	Strategy string `json:"strategy"`

	// Quantum is the effective quantum after boundary clamping.
	Quantum int `json:"quantum"`

	MakespanMinutes int       `json:"makespanMinutes"`
	GapMinutes      int       `json:"gapMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}
