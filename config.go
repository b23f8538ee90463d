package teamsplit

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/arloliu/teamsplit/strategy"
	"gopkg.in/yaml.v3"
)

// SearchConfig bounds the exact search.
type SearchConfig struct {
	// MaxNodes caps the number of search nodes expanded per solve (0 = unlimited).
	//
	// Default: 20,000,000
	MaxNodes int64 `yaml:"maxNodes"`

	// MaxStates caps the visited states remembered per solve, bounding search
	// memory (roughly 130 bytes per state). Past the ceiling the search
	// continues without memoizing new states. 0 applies the default.
	//
	// Default: 1,000,000
	MaxStates int64 `yaml:"maxStates"`

	// Timeout bounds the wall-clock time of each search (0 = none).
	// When it expires the best plan found so far is returned.
	//
	// Default: 10 seconds
	Timeout time.Duration `yaml:"timeout"`
}

// HistoryConfig configures solve history persistence.
type HistoryConfig struct {
	// Enabled turns on history persistence for the CLI and the NATS service.
	Enabled bool `yaml:"enabled"`

	// Bucket is the NATS JetStream KV bucket name for history records.
	Bucket string `yaml:"bucket"`

	// TTL is how long records remain in KV (0 = no expiration).
	TTL time.Duration `yaml:"ttl"`

	// ListLimit is the default number of records returned by a history listing.
	ListLimit int `yaml:"listLimit"`
}

// NATSConfig configures the NATS request/reply service.
type NATSConfig struct {
	// URL is the NATS server URL.
	URL string `yaml:"url"`

	// Subject is the request subject the service listens on.
	Subject string `yaml:"subject"`

	// QueueGroup load-balances requests across service instances.
	QueueGroup string `yaml:"queueGroup"`

	// RequestTimeout is how long clients wait for a reply.
	// Should exceed Search.Timeout so exhausted searches still reply in time.
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace"`

	// Addr is the listen address of the /metrics endpoint ("" disables it).
	Addr string `yaml:"addr"`
}

// LookupConfig configures the default duration table.
type LookupConfig struct {
	// File is a YAML file mapping job names to durations ("" disables lookup).
	File string `yaml:"file"`

	// TTL is how long the table is cached before it is fetched again (0 = forever).
	TTL time.Duration `yaml:"ttl"`
}

// LogConfig configures the slog-based logger used by the command-line tool.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// Config is the configuration for the Solver and the teamsplit service.
//
// All duration fields accept standard Go duration strings like "30s", "5m", "1h".
type Config struct {
	// DefaultTeamCount is used by the CLI and the service when a request omits the team count.
	DefaultTeamCount int `yaml:"defaultTeamCount"`

	// DefaultQuantum is used by the CLI and the service when a request omits the quantum.
	DefaultQuantum int `yaml:"defaultQuantum"`

	// Strategy selects the assignment strategy ("exact", "lpt", "round-robin").
	Strategy string `yaml:"strategy"`

	// Search bounds the exact strategy.
	Search SearchConfig `yaml:"search"`

	// History controls solve history persistence.
	History HistoryConfig `yaml:"history"`

	// NATS controls the request/reply service.
	NATS NATSConfig `yaml:"nats"`

	// Metrics controls Prometheus metrics.
	Metrics MetricsConfig `yaml:"metrics"`

	// Lookup controls the default duration table.
	Lookup LookupConfig `yaml:"lookup"`

	// Log controls logging output.
	Log LogConfig `yaml:"log"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		DefaultTeamCount: 2,
		DefaultQuantum:   15,
		Strategy:         strategy.NameExact,
		Search: SearchConfig{
			MaxNodes:  20_000_000,
			MaxStates: 1_000_000,
			Timeout:   10 * time.Second,
		},
		History: HistoryConfig{
			Enabled:   false,
			Bucket:    "teamsplit-history",
			TTL:       0, // No TTL - records persist until deleted
			ListLimit: 20,
		},
		NATS: NATSConfig{
			URL:            "nats://127.0.0.1:4222",
			Subject:        "teamsplit.solve",
			QueueGroup:     "teamsplit",
			RequestTimeout: 30 * time.Second,
		},
		Metrics: MetricsConfig{
			Namespace: "teamsplit",
			Addr:      ":9090",
		},
		Lookup: LookupConfig{
			TTL: 5 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.DefaultTeamCount == 0 {
		cfg.DefaultTeamCount = defaults.DefaultTeamCount
	}
	if cfg.DefaultQuantum == 0 {
		cfg.DefaultQuantum = defaults.DefaultQuantum
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	// Note: Search.MaxNodes and Search.Timeout of 0 are valid (unbounded), so no defaults
	if cfg.Search.MaxStates == 0 {
		cfg.Search.MaxStates = defaults.Search.MaxStates
	}
	if cfg.History.Bucket == "" {
		cfg.History.Bucket = defaults.History.Bucket
	}
	if cfg.History.ListLimit == 0 {
		cfg.History.ListLimit = defaults.History.ListLimit
	}
	if cfg.NATS.URL == "" {
		cfg.NATS.URL = defaults.NATS.URL
	}
	if cfg.NATS.Subject == "" {
		cfg.NATS.Subject = defaults.NATS.Subject
	}
	if cfg.NATS.QueueGroup == "" {
		cfg.NATS.QueueGroup = defaults.NATS.QueueGroup
	}
	if cfg.NATS.RequestTimeout == 0 {
		cfg.NATS.RequestTimeout = defaults.NATS.RequestTimeout
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}
	// Note: Lookup.TTL of 0 is valid (cache forever), so we don't apply default
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - DefaultTeamCount >= 1
//   - DefaultQuantum >= 1
//   - Strategy is a registered strategy name
//   - Search.MaxNodes >= 0, Search.MaxStates >= 0 and Search.Timeout >= 0
//   - History.ListLimit >= 1 and History.TTL >= 0
//   - NATS.Subject is set and NATS.RequestTimeout > 0
//   - Lookup.TTL >= 0
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	// Rule 1: request defaults
	if cfg.DefaultTeamCount < 1 {
		return fmt.Errorf("%w: DefaultTeamCount must be >= 1, got %d", ErrInvalidConfig, cfg.DefaultTeamCount)
	}
	if cfg.DefaultQuantum < 1 {
		return fmt.Errorf("%w: DefaultQuantum must be >= 1, got %d", ErrInvalidConfig, cfg.DefaultQuantum)
	}

	// Rule 2: strategy name
	if !slices.Contains(strategy.Names(), cfg.Strategy) {
		return fmt.Errorf("%w: Strategy %q is not one of %v", ErrInvalidConfig, cfg.Strategy, strategy.Names())
	}

	// Rule 3: search budget
	if cfg.Search.MaxNodes < 0 {
		return fmt.Errorf("%w: Search.MaxNodes must be >= 0, got %d", ErrInvalidConfig, cfg.Search.MaxNodes)
	}
	if cfg.Search.MaxStates < 0 {
		return fmt.Errorf("%w: Search.MaxStates must be >= 0, got %d", ErrInvalidConfig, cfg.Search.MaxStates)
	}
	if cfg.Search.Timeout < 0 {
		return fmt.Errorf("%w: Search.Timeout must be >= 0, got %v", ErrInvalidConfig, cfg.Search.Timeout)
	}

	// Rule 4: history
	if cfg.History.ListLimit < 1 {
		return fmt.Errorf("%w: History.ListLimit must be >= 1, got %d", ErrInvalidConfig, cfg.History.ListLimit)
	}
	if cfg.History.TTL < 0 {
		return fmt.Errorf("%w: History.TTL must be >= 0, got %v", ErrInvalidConfig, cfg.History.TTL)
	}
	if cfg.History.Enabled && cfg.History.Bucket == "" {
		return fmt.Errorf("%w: History.Bucket is required when history is enabled", ErrInvalidConfig)
	}

	// Rule 5: NATS service
	if cfg.NATS.Subject == "" {
		return fmt.Errorf("%w: NATS.Subject is required", ErrInvalidConfig)
	}
	if cfg.NATS.RequestTimeout <= 0 {
		return fmt.Errorf("%w: NATS.RequestTimeout must be > 0, got %v", ErrInvalidConfig, cfg.NATS.RequestTimeout)
	}

	// Rule 6: lookup cache
	if cfg.Lookup.TTL < 0 {
		return fmt.Errorf("%w: Lookup.TTL must be >= 0, got %v", ErrInvalidConfig, cfg.Lookup.TTL)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in NewSolver() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	// Warn if the exact search has no budget at all
	if cfg.Strategy == strategy.NameExact && cfg.Search.MaxNodes == 0 && cfg.Search.Timeout == 0 {
		logger.Warn(
			"exact search is unbounded; large job lists may not terminate in practice",
			"maxNodes", cfg.Search.MaxNodes,
			"timeout", cfg.Search.Timeout,
			"recommended", "set search.maxNodes or search.timeout",
		)
	}

	// Warn if replies may arrive after clients gave up
	if cfg.Search.Timeout > 0 && cfg.NATS.RequestTimeout <= cfg.Search.Timeout {
		logger.Warn(
			"NATS request timeout does not exceed search timeout; clients may time out before the reply",
			"requestTimeout", cfg.NATS.RequestTimeout,
			"searchTimeout", cfg.Search.Timeout,
		)
	}

	// Warn if quantum is one minute; search space grows with total minutes
	if cfg.DefaultQuantum == 1 {
		logger.Warn(
			"DefaultQuantum is 1 minute, exact search may be slow for long job lists",
			"quantum", cfg.DefaultQuantum,
			"recommended", "5 or higher",
		)
	}
}

// LoadConfig reads a YAML configuration file and applies defaults.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: Loaded configuration with defaults applied
//   - error: Read, parse or validation error
//
// Example:
//
//	cfg, err := teamsplit.LoadConfig("teamsplit.yaml")
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, path, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// The search budget is small enough that a runaway test fails fast instead
// of hanging. Use DefaultConfig() for production deployments.
//
// Returns:
//   - Config: Configuration with tight budgets for tests
//
// Example:
//
//	cfg := teamsplit.TestConfig()
//	solver, err := teamsplit.NewSolver(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.Search.MaxNodes = 1_000_000
	cfg.Search.MaxStates = 100_000
	cfg.Search.Timeout = 5 * time.Second
	cfg.NATS.RequestTimeout = 10 * time.Second
	cfg.History.Bucket = "teamsplit-history-test"
	cfg.Lookup.TTL = 100 * time.Millisecond

	return cfg
}
