package teamsplit

import "github.com/arloliu/teamsplit/types"

// Sentinel errors returned by the Solver, re-exported from the types package.
var (
	// ErrInvalidInput is returned when a problem violates the input contract.
	ErrInvalidInput = types.ErrInvalidInput

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownStrategy is returned when a strategy name is not registered.
	ErrUnknownStrategy = types.ErrUnknownStrategy

	// ErrNoTeams is returned by strategies when asked to assign to zero teams.
	ErrNoTeams = types.ErrNoTeams

	// ErrHistoryDisabled is returned when history is queried but no store is configured.
	ErrHistoryDisabled = types.ErrHistoryDisabled

	// ErrRecordNotFound is returned when a history record does not exist.
	ErrRecordNotFound = types.ErrRecordNotFound

	// ErrLookupMiss is returned when a job name has no entry in the duration table.
	ErrLookupMiss = types.ErrLookupMiss

	// ErrServiceUnavailable is returned by the service client when no responder answers.
	ErrServiceUnavailable = types.ErrServiceUnavailable
)
