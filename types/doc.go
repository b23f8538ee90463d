// Package types provides core type definitions and interfaces for the teamsplit library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root teamsplit package, the strategies, and the internal engine.
//
// Key types:
//   - Job: A unit of work with a duration and an optional pinned team
//   - Problem: A validated job list plus team count and quantum
//   - Plan: Per-team assignment produced by an AssignmentStrategy
//   - Result: A Plan enriched with solve metadata by the Solver
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
