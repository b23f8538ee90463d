package teamsplit

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type recordingLogger struct {
	mu           sync.Mutex
	warnMessages []string
}

func (l *recordingLogger) Debug(string, ...any) {}

func (l *recordingLogger) Info(string, ...any) {}

func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnMessages = append(l.warnMessages, msg)
}

func (l *recordingLogger) Error(string, ...any) {}

func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.warnMessages...)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 2, cfg.DefaultTeamCount)
	require.Equal(t, 15, cfg.DefaultQuantum)
	require.Equal(t, "exact", cfg.Strategy)
	require.Equal(t, int64(20_000_000), cfg.Search.MaxNodes)
	require.Equal(t, int64(1_000_000), cfg.Search.MaxStates)
	require.Equal(t, 10*time.Second, cfg.Search.Timeout)
	require.False(t, cfg.History.Enabled)
	require.Equal(t, "teamsplit-history", cfg.History.Bucket)
	require.Equal(t, 20, cfg.History.ListLimit)
	require.Equal(t, "teamsplit.solve", cfg.NATS.Subject)
	require.Equal(t, "teamsplit", cfg.NATS.QueueGroup)
	require.Equal(t, 30*time.Second, cfg.NATS.RequestTimeout)
	require.Equal(t, "teamsplit", cfg.Metrics.Namespace)
	require.Equal(t, 5*time.Minute, cfg.Lookup.TTL)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, 2, cfg.DefaultTeamCount)
		require.Equal(t, 15, cfg.DefaultQuantum)
		require.Equal(t, "exact", cfg.Strategy)
		require.Equal(t, "teamsplit-history", cfg.History.Bucket)
		require.Equal(t, "nats://127.0.0.1:4222", cfg.NATS.URL)
		require.Equal(t, "info", cfg.Log.Level)
		require.NoError(t, cfg.Validate())
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			DefaultTeamCount: 4,
			DefaultQuantum:   5,
			Strategy:         "lpt",
			Search:           SearchConfig{MaxNodes: 10, Timeout: time.Second},
			History:          HistoryConfig{Enabled: true, Bucket: "hist", ListLimit: 3},
			NATS:             NATSConfig{URL: "nats://nats:4222", Subject: "plan.solve", QueueGroup: "planners", RequestTimeout: time.Minute},
			Metrics:          MetricsConfig{Namespace: "ops"},
			Log:              LogConfig{Level: "debug", Format: "json"},
		}
		SetDefaults(&cfg)

		require.Equal(t, 4, cfg.DefaultTeamCount)
		require.Equal(t, 5, cfg.DefaultQuantum)
		require.Equal(t, "lpt", cfg.Strategy)
		require.Equal(t, int64(10), cfg.Search.MaxNodes)
		require.Equal(t, "hist", cfg.History.Bucket)
		require.Equal(t, 3, cfg.History.ListLimit)
		require.Equal(t, "plan.solve", cfg.NATS.Subject)
		require.Equal(t, "planners", cfg.NATS.QueueGroup)
		require.Equal(t, "ops", cfg.Metrics.Namespace)
		require.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("keeps zero search budget", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Zero(t, cfg.Search.MaxNodes)
		require.Zero(t, cfg.Search.Timeout)
		require.Equal(t, int64(1_000_000), cfg.Search.MaxStates, "memo memory is always bounded")
		require.Zero(t, cfg.Lookup.TTL)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"team count", func(c *Config) { c.DefaultTeamCount = 0 }, "DefaultTeamCount"},
		{"quantum", func(c *Config) { c.DefaultQuantum = -1 }, "DefaultQuantum"},
		{"strategy", func(c *Config) { c.Strategy = "random" }, "Strategy"},
		{"max nodes", func(c *Config) { c.Search.MaxNodes = -1 }, "Search.MaxNodes"},
		{"max states", func(c *Config) { c.Search.MaxStates = -1 }, "Search.MaxStates"},
		{"search timeout", func(c *Config) { c.Search.Timeout = -time.Second }, "Search.Timeout"},
		{"list limit", func(c *Config) { c.History.ListLimit = 0 }, "History.ListLimit"},
		{"history ttl", func(c *Config) { c.History.TTL = -time.Hour }, "History.TTL"},
		{"history bucket", func(c *Config) { c.History.Enabled = true; c.History.Bucket = "" }, "History.Bucket"},
		{"subject", func(c *Config) { c.NATS.Subject = "" }, "NATS.Subject"},
		{"request timeout", func(c *Config) { c.NATS.RequestTimeout = 0 }, "NATS.RequestTimeout"},
		{"lookup ttl", func(c *Config) { c.Lookup.TTL = -time.Second }, "Lookup.TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("no warnings for defaults", func(t *testing.T) {
		logger := &recordingLogger{}
		cfg := DefaultConfig()
		cfg.ValidateWithWarnings(logger)

		require.Empty(t, logger.warnings())
	})

	t.Run("warns on unbounded search and short request timeout", func(t *testing.T) {
		logger := &recordingLogger{}

		cfg := DefaultConfig()
		cfg.Search.MaxNodes = 0
		cfg.Search.Timeout = 0
		cfg.DefaultQuantum = 1
		cfg.ValidateWithWarnings(logger)
		require.Len(t, logger.warnings(), 2)

		logger = &recordingLogger{}
		cfg = DefaultConfig()
		cfg.NATS.RequestTimeout = cfg.Search.Timeout
		cfg.ValidateWithWarnings(logger)
		require.Len(t, logger.warnings(), 1)
	})
}

// TestConfig_YAML demonstrates that time.Duration works directly with YAML unmarshaling
func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
defaultTeamCount: 3
defaultQuantum: 10
strategy: lpt
search:
  maxNodes: 5000
  timeout: 1500ms
history:
  enabled: true
  bucket: plans
  ttl: 168h
  listLimit: 5
nats:
  url: nats://broker:4222
  subject: crews.solve
  queueGroup: crews
  requestTimeout: 45s
metrics:
  namespace: crews
  addr: ":2112"
lookup:
  file: durations.yaml
  ttl: 1m
log:
  level: debug
  format: json
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, 3, cfg.DefaultTeamCount)
	require.Equal(t, 10, cfg.DefaultQuantum)
	require.Equal(t, "lpt", cfg.Strategy)
	require.Equal(t, int64(5000), cfg.Search.MaxNodes)
	require.Equal(t, 1500*time.Millisecond, cfg.Search.Timeout)
	require.True(t, cfg.History.Enabled)
	require.Equal(t, "plans", cfg.History.Bucket)
	require.Equal(t, 168*time.Hour, cfg.History.TTL)
	require.Equal(t, 5, cfg.History.ListLimit)
	require.Equal(t, "nats://broker:4222", cfg.NATS.URL)
	require.Equal(t, "crews.solve", cfg.NATS.Subject)
	require.Equal(t, "crews", cfg.NATS.QueueGroup)
	require.Equal(t, 45*time.Second, cfg.NATS.RequestTimeout)
	require.Equal(t, ":2112", cfg.Metrics.Addr)
	require.Equal(t, "durations.yaml", cfg.Lookup.File)
	require.Equal(t, time.Minute, cfg.Lookup.TTL)
	require.Equal(t, "json", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults to partial file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "teamsplit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("defaultTeamCount: 5\nsearch:\n  timeout: 2s\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		require.Equal(t, 5, cfg.DefaultTeamCount)
		require.Equal(t, 2*time.Second, cfg.Search.Timeout)
		require.Equal(t, 15, cfg.DefaultQuantum)
		require.Equal(t, "teamsplit.solve", cfg.NATS.Subject)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("search: [unclosed"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("strategy: fastest\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.Less(t, cfg.Search.MaxNodes, DefaultConfig().Search.MaxNodes)
	require.Greater(t, cfg.NATS.RequestTimeout, cfg.Search.Timeout)
}
