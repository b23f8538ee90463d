package teamsplit

// Option configures a Solver with optional dependencies.
type Option func(*solverOptions)

// solverOptions holds optional Solver configuration.
type solverOptions struct {
	strategy AssignmentStrategy
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
	history  HistoryStore
	lookup   DurationResolver
}

// WithStrategy overrides the strategy selected by Config.Strategy.
//
// Parameters:
//   - strategy: AssignmentStrategy implementation
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithStrategy(strategy.NewLPT()))
func WithStrategy(strategy AssignmentStrategy) Option {
	return func(o *solverOptions) {
		o.strategy = strategy
	}
}

// WithHooks sets solve event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions; nil callbacks are skipped
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	hooks := &teamsplit.Hooks{
//	    OnSolved: func(ctx context.Context, res teamsplit.Result) error {
//	        return publish(ctx, res)
//	    },
//	}
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *solverOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithMetrics(teamsplit.NewPrometheusMetrics(nil, "")))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *solverOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *solverOptions) {
		o.logger = logger
	}
}

// WithHistory persists every successful solve to the given store.
//
// Persistence failures are logged and reported to Hooks.OnError; they never
// fail the solve.
//
// Parameters:
//   - store: HistoryStore implementation (history.NewMemory, history.NewKV)
//
// Returns:
//   - Option: Functional option for NewSolver
func WithHistory(store HistoryStore) Option {
	return func(o *solverOptions) {
		o.history = store
	}
}

// WithDurationLookup resolves jobs submitted without a duration by name.
//
// Parameters:
//   - resolver: DurationResolver implementation (e.g., *lookup.Table)
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	table := lookup.NewTable(lookup.NewFileFetcher("durations.yaml"), lookup.WithTTL(5*time.Minute))
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithDurationLookup(table))
func WithDurationLookup(resolver DurationResolver) Option {
	return func(o *solverOptions) {
		o.lookup = resolver
	}
}
