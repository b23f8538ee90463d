package types

import "context"

// JobSource provides the list of jobs to balance.
//
// Implementations can read from various backends:
//   - Static: fixed list for testing
//   - File: YAML job sheet with human-readable durations
type JobSource interface {
	// ListJobs returns all jobs in their input order.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []Job: List of jobs
	//   - error: Discovery error (nil on success)
	ListJobs(ctx context.Context) ([]Job, error)
}

// DurationFetcher loads the default duration table used to fill in jobs
// submitted without a duration.
type DurationFetcher interface {
	// FetchDurations returns the full name → minutes table.
	FetchDurations(ctx context.Context) (map[string]int, error)
}

// DurationResolver resolves a job name to its default duration.
//
// The Solver consults it for jobs submitted with DurationMinutes == 0.
type DurationResolver interface {
	// Resolve returns the duration in minutes for name, or an error wrapping
	// ErrLookupMiss when the name is unknown.
	Resolve(ctx context.Context, name string) (int, error)
}
