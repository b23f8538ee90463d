package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called concurrently and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	SolverMetrics
	SearchMetrics
	HistoryMetrics
	LookupMetrics
}

// SolverMetrics defines metrics for solve requests.
type SolverMetrics interface {
	// RecordSolve records a completed solve request.
	//
	// Parameters:
	//   - strategy: Strategy name ("exact", "lpt", "round-robin")
	//   - duration: Time taken in seconds
	//   - success: true if a plan was produced
	RecordSolve(strategy string, duration float64, success bool)

	// RecordJobCount records the job mix of a solve request.
	//
	// Parameters:
	//   - fixed: Number of jobs pinned to a valid team
	//   - free: Number of jobs distributed by the strategy
	RecordJobCount(fixed, free int)
}

// SearchMetrics defines metrics for the exact search.
type SearchMetrics interface {
	// RecordSearch records the statistics of one search run.
	RecordSearch(stats SearchStats)

	// RecordMakespan records the baseline and final makespan in weight units.
	RecordMakespan(baseline, final int)
}

// HistoryMetrics defines metrics for history persistence.
type HistoryMetrics interface {
	// RecordHistoryOperation records history store latency.
	//
	// Parameters:
	//   - operation: Operation type ("save", "get", "list")
	//   - duration: Time taken in seconds
	//   - success: true if the operation succeeded
	RecordHistoryOperation(operation string, duration float64, success bool)
}

// LookupMetrics defines metrics for the duration lookup table.
type LookupMetrics interface {
	// RecordLookup records a table lookup outcome.
	RecordLookup(hit bool)

	// RecordLookupRefresh records a table refresh from its fetcher.
	RecordLookupRefresh(duration float64, success bool)
}
