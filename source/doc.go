// Package source provides built-in job source implementations.
//
// Job sources supply the ordered job list for a solve. The package includes:
//
//   - Static: Fixed list of jobs
//   - File: YAML job sheet with human-readable durations
//
// Custom sources can be implemented by satisfying the types.JobSource interface.
package source
