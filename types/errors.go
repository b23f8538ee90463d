package types

import (
	"errors"
	"strings"
)

// Sentinel errors for the teamsplit library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("%w: detail", err).

// Solver errors - Public API errors returned by the Solver.
var (
	// ErrInvalidInput is returned when a problem violates the input contract
	// (no teams, no jobs, empty names, non-positive durations).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownStrategy is returned when a strategy name is not registered.
	ErrUnknownStrategy = errors.New("unknown assignment strategy")

	// ErrNoTeams is returned when trying to assign jobs with no teams.
	ErrNoTeams = errors.New("no teams available for assignment")
)

// History errors - Solve history persistence errors.
var (
	// ErrHistoryDisabled is returned when history is queried but no store is configured.
	ErrHistoryDisabled = errors.New("history store not configured")

	// ErrRecordNotFound is returned when a history record does not exist.
	ErrRecordNotFound = errors.New("history record not found")

	// ErrNoKeysFound is returned when NATS KV returns no keys (expected condition).
	ErrNoKeysFound = errors.New("no keys found")
)

// Lookup errors - Duration table errors.
var (
	// ErrLookupMiss is returned when a job name has no entry in the duration table.
	ErrLookupMiss = errors.New("duration not found in lookup table")
)

// Service errors - Errors surfaced by the NATS solve service and its client.
var (
	// ErrServiceUnavailable is returned when no solve service answers or the
	// broker cannot be reached.
	ErrServiceUnavailable = errors.New("solve service unavailable")

	// ErrRemote is returned when the solve service replied with an error code
	// that has no local sentinel.
	ErrRemote = errors.New("solve service error")
)

// IsNoKeysFoundError checks if an error indicates that no keys were found in NATS KV.
//
// This function handles NATS-specific "no keys found" errors which may come as:
//   - Direct error: "nats: no keys found"
//   - Wrapped error: "failed to list KV keys: nats: no keys found"
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if the error indicates no keys were found, false otherwise
func IsNoKeysFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoKeysFound) {
		return true
	}

	return strings.Contains(err.Error(), "no keys found")
}
