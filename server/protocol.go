package server

import (
	"context"
	"errors"

	"github.com/arloliu/teamsplit/types"
)

// Error codes carried in a Response.
const (
	CodeBadRequest      = "bad_request"
	CodeInvalidInput    = "invalid_input"
	CodeUnknownStrategy = "unknown_strategy"
	CodeNoTeams         = "no_teams"
	CodeTimeout         = "timeout"
	CodeUnavailable     = "unavailable"
	CodeInternal        = "internal"
)

// Request is the JSON body of a solve request.
//
// TeamCount and Quantum fall back to the server defaults when zero.
type Request struct {
	Jobs      []types.Job `json:"jobs"`
	TeamCount int         `json:"teamCount,omitempty"`
	Quantum   int         `json:"quantum,omitempty"`
}

// Response is the JSON body of a solve reply. Exactly one field is set.
type Response struct {
	Result *types.Result `json:"result,omitempty"`
	Error  *ErrorBody    `json:"error,omitempty"`
}

// ErrorBody describes a failed solve.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// codeFor maps a solve error to its wire code.
func codeFor(err error) string {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, types.ErrUnknownStrategy):
		return CodeUnknownStrategy
	case errors.Is(err, types.ErrNoTeams):
		return CodeNoTeams
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.Is(err, types.ErrServiceUnavailable):
		return CodeUnavailable
	default:
		return CodeInternal
	}
}

// errorFor maps a wire code back to a sentinel error.
func errorFor(code string) error {
	switch code {
	case CodeInvalidInput, CodeBadRequest:
		return types.ErrInvalidInput
	case CodeUnknownStrategy:
		return types.ErrUnknownStrategy
	case CodeNoTeams:
		return types.ErrNoTeams
	case CodeTimeout:
		return context.DeadlineExceeded
	case CodeUnavailable:
		return types.ErrServiceUnavailable
	default:
		return types.ErrRemote
	}
}
