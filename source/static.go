package source

import (
	"context"
	"slices"
	"sync"

	"github.com/arloliu/teamsplit/types"
)

// Static implements a job source with a fixed list of jobs.
type Static struct {
	mu   sync.RWMutex
	jobs []types.Job
}

var _ types.JobSource = (*Static)(nil)

// NewStatic creates a new static job source.
//
// The source returns a fixed list of jobs until Update replaces it.
// Useful for testing and for callers that build job lists in code.
//
// Parameters:
//   - jobs: Fixed list of jobs (copied)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Job{
//	    {Name: "12 Oak St", DurationMinutes: 90},
//	    {Name: "3 Elm Ave", DurationMinutes: 45, FixedTeam: 2},
//	})
//	jobs, _ := src.ListJobs(ctx)
func NewStatic(jobs []types.Job) *Static {
	return &Static{
		jobs: slices.Clone(jobs),
	}
}

// ListJobs returns a copy of the job list.
//
// Returns:
//   - []types.Job: The fixed list of jobs
//   - error: Always nil (never fails)
func (s *Static) ListJobs(_ context.Context) ([]types.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.jobs), nil
}

// Update replaces the job list.
//
// Parameters:
//   - jobs: New list of jobs (copied)
func (s *Static) Update(jobs []types.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = slices.Clone(jobs)
}
