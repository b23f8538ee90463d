package testing

import (
	"testing"

	"github.com/arloliu/teamsplit/internal/logging"
	"github.com/arloliu/teamsplit/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// This is useful for seeing solver and service log output during test runs.
func NewTestLogger(t *testing.T) types.Logger {
	return logging.NewTest(t)
}
