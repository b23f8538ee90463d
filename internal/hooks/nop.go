package hooks

import (
	"context"

	"github.com/arloliu/teamsplit/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Result) error      = (*NopHooks)(nil).OnSolved
	_ func(context.Context, types.SearchStats) error = (*NopHooks)(nil).OnBudgetExhausted
	_ func(context.Context, error) error             = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnSolved:          h.OnSolved,
		OnBudgetExhausted: h.OnBudgetExhausted,
		OnError:           h.OnError,
	}
}

// Fill returns hooks with every nil callback replaced by its no-op version.
//
// Parameters:
//   - h: Caller-supplied hooks, possibly partially populated
//
// Returns:
//   - types.Hooks: Hooks safe to call without nil checks
func Fill(h types.Hooks) types.Hooks {
	nop := NewNop()
	if h.OnSolved == nil {
		h.OnSolved = nop.OnSolved
	}
	if h.OnBudgetExhausted == nil {
		h.OnBudgetExhausted = nop.OnBudgetExhausted
	}
	if h.OnError == nil {
		h.OnError = nop.OnError
	}

	return h
}

// OnSolved is a no-op implementation.
func (h *NopHooks) OnSolved(ctx context.Context, result types.Result) error {
	return nil
}

// OnBudgetExhausted is a no-op implementation.
func (h *NopHooks) OnBudgetExhausted(ctx context.Context, stats types.SearchStats) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
