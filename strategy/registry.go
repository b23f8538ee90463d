package strategy

import (
	"fmt"

	"github.com/arloliu/teamsplit/types"
)

// Built-in strategy names.
const (
	NameExact      = "exact"
	NameLPT        = "lpt"
	NameRoundRobin = "round-robin"
)

// Names returns the built-in strategy names, default first.
func Names() []string {
	return []string{NameExact, NameLPT, NameRoundRobin}
}

// New resolves a strategy by name. An empty name selects the exact strategy.
//
// Parameters:
//   - name: Strategy name ("exact", "lpt", "round-robin")
//   - opts: Options applied when the exact strategy is selected
//
// Returns:
//   - types.AssignmentStrategy: The resolved strategy
//   - error: ErrUnknownStrategy for an unregistered name
//
// Example:
//
//	s, err := strategy.New(cfg.Strategy, strategy.WithMaxNodes(cfg.Search.MaxNodes))
func New(name string, opts ...BranchAndBoundOption) (types.AssignmentStrategy, error) {
	switch name {
	case "", NameExact:
		return NewBranchAndBound(opts...), nil
	case NameLPT:
		return NewLPT(), nil
	case NameRoundRobin:
		return NewRoundRobin(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownStrategy, name)
	}
}
