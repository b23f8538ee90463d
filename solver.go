package teamsplit

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/arloliu/teamsplit/internal/hooks"
	"github.com/arloliu/teamsplit/internal/logging"
	"github.com/arloliu/teamsplit/internal/metrics"
	"github.com/arloliu/teamsplit/strategy"
	"github.com/google/uuid"
)

// Solver validates problems, runs the configured strategy and records results.
//
// A Solver is safe for concurrent use; every Solve call builds its own
// search state.
type Solver struct {
	cfg      Config
	strategy AssignmentStrategy
	hooks    Hooks
	metrics  MetricsCollector
	logger   Logger
	history  HistoryStore
	lookup   DurationResolver
	now      func() time.Time
}

// NewSolver creates a new Solver.
//
// The configuration is copied, completed with SetDefaults and validated.
// Unless WithStrategy is given, the strategy named by cfg.Strategy is built
// with cfg.Search as its budget.
//
// Parameters:
//   - cfg: Configuration (required)
//   - opts: Optional dependencies (WithStrategy, WithLogger, WithMetrics, WithHooks, WithHistory, WithDurationLookup)
//
// Returns:
//   - *Solver: Ready-to-use solver
//   - error: ErrInvalidConfig or ErrUnknownStrategy
//
// Example:
//
//	cfg := teamsplit.DefaultConfig()
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithLogger(logger))
func NewSolver(cfg *Config, opts ...Option) (*Solver, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is required", ErrInvalidConfig)
	}

	options := &solverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	s := &Solver{
		cfg:     *cfg,
		logger:  options.logger,
		metrics: options.metrics,
		history: options.history,
		lookup:  options.lookup,
		now:     time.Now,
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNop()
	}
	if options.hooks != nil {
		s.hooks = hooks.Fill(*options.hooks)
	} else {
		s.hooks = hooks.NewNop()
	}

	SetDefaults(&s.cfg)
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	s.cfg.ValidateWithWarnings(s.logger)

	s.strategy = options.strategy
	if s.strategy == nil {
		st, err := strategy.New(s.cfg.Strategy,
			strategy.WithMaxNodes(s.cfg.Search.MaxNodes),
			strategy.WithMaxStates(s.cfg.Search.MaxStates),
			strategy.WithTimeout(s.cfg.Search.Timeout),
			strategy.WithLogger(s.logger),
		)
		if err != nil {
			return nil, err
		}
		s.strategy = st
	}

	return s, nil
}

// Config returns a copy of the effective configuration.
func (s *Solver) Config() Config {
	return s.cfg
}

// Strategy returns the name of the strategy in use.
func (s *Solver) Strategy() string {
	return s.strategy.Name()
}

// Solve assigns the problem's jobs to its teams.
//
// The problem is validated first: at least one team, at least one job, every
// job named and every duration positive. Jobs with DurationMinutes == 0 are
// resolved through the duration lookup; a job that stays unresolved is
// invalid. Quantum < 1 is clamped to 1. FixedTeam values outside
// [1, TeamCount] leave the job free.
//
// A search stopped by its budget is not an error: the best plan found is
// returned with Stats.Exhausted set.
//
// Parameters:
//   - ctx: Context for cancellation; also bounds the search
//   - problem: Jobs, team count and quantum
//
// Returns:
//   - *Result: Plan with makespan, gap and solve metadata
//   - error: ErrInvalidInput (wrapped with details) or a strategy error
func (s *Solver) Solve(ctx context.Context, problem Problem) (*Result, error) {
	start := s.now()

	normalized, err := s.normalize(ctx, problem)
	if err != nil {
		s.metrics.RecordSolve(s.strategy.Name(), time.Since(start).Seconds(), false)
		return nil, err
	}

	fixed := 0
	for _, j := range normalized.Jobs {
		if j.PinnedTo(normalized.TeamCount) {
			fixed++
		}
	}
	s.metrics.RecordJobCount(fixed, len(normalized.Jobs)-fixed)

	s.logger.Debug("solve started",
		"strategy", s.strategy.Name(),
		"jobs", len(normalized.Jobs),
		"fixed", fixed,
		"teams", normalized.TeamCount,
		"quantum", normalized.Quantum,
	)

	plan, err := s.strategy.Assign(ctx, normalized)
	if err != nil {
		s.metrics.RecordSolve(s.strategy.Name(), time.Since(start).Seconds(), false)
		return nil, fmt.Errorf("strategy %s failed: %w", s.strategy.Name(), err)
	}

	result := &Result{
		Plan:            plan,
		ID:              uuid.NewString(),
		Strategy:        s.strategy.Name(),
		Quantum:         normalized.Quantum,
		MakespanMinutes: plan.LongestTeamMinutes(),
		GapMinutes:      plan.SpreadMinutes(),
		CreatedAt:       start.UTC(),
	}

	s.metrics.RecordSolve(result.Strategy, time.Since(start).Seconds(), true)
	if plan.Stats.Nodes > 0 {
		s.metrics.RecordSearch(plan.Stats)
	}
	s.metrics.RecordMakespan(plan.BaselineMakespanWeight, plan.MakespanWeight)

	if plan.Stats.Exhausted {
		if err := s.hooks.OnBudgetExhausted(ctx, plan.Stats); err != nil {
			s.logger.Warn("OnBudgetExhausted hook failed", "error", err)
		}
	}

	s.saveHistory(ctx, normalized, result)

	if err := s.hooks.OnSolved(ctx, *result); err != nil {
		s.logger.Warn("OnSolved hook failed", "id", result.ID, "error", err)
	}

	s.logger.Info("solve completed",
		"id", result.ID,
		"strategy", result.Strategy,
		"teams", len(result.Teams),
		"makespan_minutes", result.MakespanMinutes,
		"gap_minutes", result.GapMinutes,
		"optimal", result.Stats.Optimal,
		"elapsed", time.Since(start),
	)

	return result, nil
}

// History returns up to limit recent solve records, newest first.
//
// Parameters:
//   - ctx: Context for cancellation
//   - limit: Maximum records (Config.History.ListLimit if <= 0)
//
// Returns:
//   - []HistoryRecord: Records, newest first
//   - error: ErrHistoryDisabled when no store is configured
func (s *Solver) History(ctx context.Context, limit int) ([]HistoryRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = s.cfg.History.ListLimit
	}

	start := time.Now()
	records, err := s.history.List(ctx, limit)
	s.metrics.RecordHistoryOperation("list", time.Since(start).Seconds(), err == nil)

	return records, err
}

// Record returns a single solve record by ID.
//
// Returns:
//   - HistoryRecord: The stored record
//   - error: ErrHistoryDisabled or ErrRecordNotFound
func (s *Solver) Record(ctx context.Context, id string) (HistoryRecord, error) {
	if s.history == nil {
		return HistoryRecord{}, ErrHistoryDisabled
	}

	start := time.Now()
	rec, err := s.history.Get(ctx, id)
	s.metrics.RecordHistoryOperation("get", time.Since(start).Seconds(), err == nil || errors.Is(err, ErrRecordNotFound))

	return rec, err
}

// normalize validates the problem and returns a copy with durations resolved
// and the quantum clamped.
func (s *Solver) normalize(ctx context.Context, problem Problem) (Problem, error) {
	if problem.TeamCount < 1 {
		return Problem{}, fmt.Errorf("%w: team count must be >= 1, got %d", ErrInvalidInput, problem.TeamCount)
	}
	if len(problem.Jobs) == 0 {
		return Problem{}, fmt.Errorf("%w: job list is empty", ErrInvalidInput)
	}

	out := Problem{
		Jobs:      slices.Clone(problem.Jobs),
		TeamCount: problem.TeamCount,
		Quantum:   problem.Quantum,
	}

	for i := range out.Jobs {
		job := &out.Jobs[i]
		if job.Name == "" {
			return Problem{}, fmt.Errorf("%w: job %d has an empty name", ErrInvalidInput, i)
		}

		if job.DurationMinutes == 0 && s.lookup != nil {
			minutes, err := s.lookup.Resolve(ctx, job.Name)
			if err != nil {
				return Problem{}, fmt.Errorf("%w: job %q has no duration: %w", ErrInvalidInput, job.Name, err)
			}
			job.DurationMinutes = minutes
		}

		if job.DurationMinutes <= 0 {
			return Problem{}, fmt.Errorf("%w: job %q duration must be > 0, got %d", ErrInvalidInput, job.Name, job.DurationMinutes)
		}
		if job.DurationMinutes > MaxJobMinutes {
			return Problem{}, fmt.Errorf("%w: job %q duration %d exceeds %d minutes", ErrInvalidInput, job.Name, job.DurationMinutes, MaxJobMinutes)
		}
	}

	if out.Quantum < 1 {
		s.logger.Warn("quantum must be positive; clamping to 1", "provided", out.Quantum, "using", 1)
		out.Quantum = 1
	}

	return out, nil
}

// saveHistory persists a solve. Failures are logged and reported to OnError.
func (s *Solver) saveHistory(ctx context.Context, problem Problem, result *Result) {
	if s.history == nil {
		return
	}

	start := time.Now()
	err := s.history.Save(ctx, HistoryRecord{
		ID:        result.ID,
		CreatedAt: result.CreatedAt,
		Problem:   problem,
		Result:    *result,
	})
	s.metrics.RecordHistoryOperation("save", time.Since(start).Seconds(), err == nil)

	if err != nil {
		s.logger.Warn("failed to save solve history", "id", result.ID, "error", err)
		if hookErr := s.hooks.OnError(ctx, fmt.Errorf("history save %s: %w", result.ID, err)); hookErr != nil {
			s.logger.Warn("OnError hook failed", "error", hookErr)
		}
	}
}
