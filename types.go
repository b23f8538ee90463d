package teamsplit

import "github.com/arloliu/teamsplit/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing strategies and
// internal packages to depend on `types` without depending on the root
// `teamsplit` package, while still providing a convenient `teamsplit.Job`,
// `teamsplit.Logger`, etc. for users.
// MaxJobMinutes is the largest accepted job duration.
const MaxJobMinutes = types.MaxJobMinutes

type (
	Job           = types.Job
	Problem       = types.Problem
	JobPlan       = types.JobPlan
	TeamPlan      = types.TeamPlan
	Plan          = types.Plan
	Result        = types.Result
	SearchStats   = types.SearchStats
	HistoryRecord = types.HistoryRecord
)

// Re-export interfaces from the internal types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	JobSource          = types.JobSource
	DurationFetcher    = types.DurationFetcher
	DurationResolver   = types.DurationResolver
	HistoryStore       = types.HistoryStore
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks
)
