package strategy

import (
	"context"
	"time"

	"github.com/arloliu/teamsplit/internal/engine"
	"github.com/arloliu/teamsplit/internal/logging"
	"github.com/arloliu/teamsplit/types"
)

// BranchAndBound implements exact minimum-makespan assignment.
type BranchAndBound struct {
	maxNodes  int64
	maxStates int64
	timeout   time.Duration
	logger   types.Logger
}

var _ types.AssignmentStrategy = (*BranchAndBound)(nil)

// BranchAndBoundOption configures a BranchAndBound strategy.
type BranchAndBoundOption func(*BranchAndBound)

// NewBranchAndBound creates a new exact branch-and-bound strategy.
//
// The strategy seeds the search with the LPT plan and explores assignments
// depth-first, pruning with a makespan lower bound, a visited-state set and
// team symmetry. With no budget it returns a provably optimal plan (in
// quantized units). When the node ceiling or timeout is hit it returns the
// best plan found so far, which is never worse than LPT.
//
// Parameters:
//   - opts: Optional configuration (WithMaxNodes, WithMaxStates, WithTimeout, WithLogger)
//
// Returns:
//   - *BranchAndBound: Initialized branch-and-bound strategy
//
// Example:
//
//	s := strategy.NewBranchAndBound(
//	    strategy.WithMaxNodes(5_000_000),
//	    strategy.WithMaxStates(1_000_000),
//	    strategy.WithTimeout(2*time.Second),
//	)
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithStrategy(s))
func NewBranchAndBound(opts ...BranchAndBoundOption) *BranchAndBound {
	bb := &BranchAndBound{
		logger: logging.NewNop(),
	}

	for _, opt := range opts {
		opt(bb)
	}

	bb.normalizeConfig()

	return bb
}

// WithMaxNodes caps the number of search nodes expanded per solve.
//
// Parameters:
//   - nodes: Node ceiling (0 = unlimited)
//
// Returns:
//   - BranchAndBoundOption: Configuration option
func WithMaxNodes(nodes int64) BranchAndBoundOption {
	return func(bb *BranchAndBound) {
		bb.maxNodes = nodes
	}
}

// WithMaxStates caps the number of visited states remembered per solve.
//
// The visited set is the search's only structure that grows with the node
// count. Past the ceiling new states are no longer recorded; the search
// stays exact, it only prunes less.
//
// Parameters:
//   - states: State ceiling (0 = unlimited)
//
// Returns:
//   - BranchAndBoundOption: Configuration option
func WithMaxStates(states int64) BranchAndBoundOption {
	return func(bb *BranchAndBound) {
		bb.maxStates = states
	}
}

// WithTimeout bounds the wall-clock time of each search.
//
// Parameters:
//   - timeout: Search deadline relative to the Assign call (0 = none)
//
// Returns:
//   - BranchAndBoundOption: Configuration option
func WithTimeout(timeout time.Duration) BranchAndBoundOption {
	return func(bb *BranchAndBound) {
		bb.timeout = timeout
	}
}

// WithLogger sets the logger used for configuration warnings and search diagnostics.
func WithLogger(logger types.Logger) BranchAndBoundOption {
	return func(bb *BranchAndBound) {
		bb.logger = logger
	}
}

// Name returns "exact".
func (bb *BranchAndBound) Name() string {
	return NameExact
}

// Assign calculates a minimum-makespan plan.
//
// The algorithm:
//  1. Quantize and partition the jobs
//  2. Build the LPT baseline as the initial incumbent
//  3. Branch-and-bound over free-job placements within the budget
//  4. Assemble per-team plans from the best assignment
//
// Parameters:
//   - ctx: Cancellation for the search; WithTimeout adds a deadline on top
//   - problem: Jobs, team count and quantum
//
// Returns:
//   - types.Plan: Best plan found with search statistics
//   - error: ErrNoTeams when TeamCount < 1
func (bb *BranchAndBound) Assign(ctx context.Context, problem types.Problem) (types.Plan, error) {
	in, err := prepare(problem)
	if err != nil {
		return types.Plan{}, err
	}

	if bb.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, bb.timeout)
		defer cancel()
	}

	baseline := in.Greedy()
	best, stats := in.Search(ctx, baseline, engine.Budget{MaxNodes: bb.maxNodes, MaxStates: bb.maxStates})

	if stats.Exhausted {
		bb.logger.Warn("search budget exhausted; returning best plan found",
			"nodes", stats.Nodes,
			"elapsed", stats.Elapsed,
			"baseline_weight", baseline.Makespan,
			"best_weight", best.Makespan,
			"lower_bound", in.LowerBound(),
		)
	} else {
		bb.logger.Debug("search completed",
			"nodes", stats.Nodes,
			"states", stats.States,
			"improvements", stats.Improvements,
			"best_weight", best.Makespan,
		)
	}

	return types.Plan{
		Teams:                  in.Assemble(best),
		MakespanWeight:         best.Makespan,
		BaselineMakespanWeight: baseline.Makespan,
		Stats:                  stats,
	}, nil
}

func (bb *BranchAndBound) normalizeConfig() {
	if bb.logger == nil {
		bb.logger = logging.NewNop()
	}

	if bb.maxNodes < 0 {
		bb.logger.Warn("max nodes must not be negative; using unlimited", "provided", bb.maxNodes, "using", 0)
		bb.maxNodes = 0
	}

	if bb.maxStates < 0 {
		bb.logger.Warn("max states must not be negative; using unlimited", "provided", bb.maxStates, "using", 0)
		bb.maxStates = 0
	}

	if bb.timeout < 0 {
		bb.logger.Warn("timeout must not be negative; disabling", "provided", bb.timeout, "using", time.Duration(0))
		bb.timeout = 0
	}
}
