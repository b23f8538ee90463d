package lookup

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arloliu/teamsplit/internal/logging"
	"github.com/arloliu/teamsplit/internal/metrics"
	"github.com/arloliu/teamsplit/types"
	"github.com/puzpuzpuz/xsync/v4"
)

// Table is a TTL-cached duration table. Safe for concurrent use.
type Table struct {
	fetcher types.DurationFetcher
	ttl     time.Duration
	logger  types.Logger
	metrics types.MetricsCollector
	now     func() time.Time

	entries  *xsync.Map[string, int]
	loadedAt atomic.Int64 // unix nanos of the last successful refresh, 0 = never
	mu       sync.Mutex   // serializes refreshes
}

var _ types.DurationResolver = (*Table)(nil)

// TableOption configures a Table.
type TableOption func(*Table)

// WithTTL sets how long fetched entries are used before the next refresh (0 = forever).
func WithTTL(ttl time.Duration) TableOption {
	return func(t *Table) {
		t.ttl = ttl
	}
}

// WithLogger sets the logger used for refresh failures.
func WithLogger(logger types.Logger) TableOption {
	return func(t *Table) {
		t.logger = logger
	}
}

// WithMetrics sets the collector for lookup hits, misses and refreshes.
func WithMetrics(m types.MetricsCollector) TableOption {
	return func(t *Table) {
		t.metrics = m
	}
}

// withClock overrides time.Now for tests.
func withClock(now func() time.Time) TableOption {
	return func(t *Table) {
		t.now = now
	}
}

// NewTable creates a table backed by fetcher. Nothing is fetched until the
// first Resolve or Refresh.
//
// Parameters:
//   - fetcher: Source of the name → minutes table
//   - opts: Optional configuration (WithTTL, WithLogger, WithMetrics)
//
// Returns:
//   - *Table: Empty table
func NewTable(fetcher types.DurationFetcher, opts ...TableOption) *Table {
	t := &Table{
		fetcher: fetcher,
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
		now:     time.Now,
		entries: xsync.NewMap[string, int](),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	if t.metrics == nil {
		t.metrics = metrics.NewNop()
	}
	if t.ttl < 0 {
		t.logger.Warn("lookup TTL must not be negative; caching forever", "provided", t.ttl)
		t.ttl = 0
	}

	return t
}

// Resolve returns the duration for name, refreshing the table first when it is stale.
//
// A failed refresh is tolerated while previously fetched entries exist; they
// keep serving until a refresh succeeds.
//
// Parameters:
//   - ctx: Context for a refresh, if one is needed
//   - name: Job name
//
// Returns:
//   - int: Duration in minutes
//   - error: ErrLookupMiss (wrapped) for unknown names, or the refresh error on an empty table
func (t *Table) Resolve(ctx context.Context, name string) (int, error) {
	if t.stale() {
		if err := t.refreshIfStale(ctx); err != nil {
			if t.loadedAt.Load() == 0 {
				return 0, err
			}
			t.logger.Warn("duration table refresh failed; serving stale entries", "error", err)
		}
	}

	minutes, ok := t.entries.Load(normalizeName(name))
	t.metrics.RecordLookup(ok)
	if !ok {
		return 0, fmt.Errorf("%w: %q", types.ErrLookupMiss, name)
	}

	return minutes, nil
}

// Refresh fetches the table now, regardless of TTL.
func (t *Table) Refresh(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.refreshLocked(ctx)
}

// Len returns the number of cached entries.
func (t *Table) Len() int {
	return t.entries.Size()
}

func (t *Table) stale() bool {
	loaded := t.loadedAt.Load()
	if loaded == 0 {
		return true
	}
	if t.ttl == 0 {
		return false
	}

	return t.now().Sub(time.Unix(0, loaded)) >= t.ttl
}

func (t *Table) refreshIfStale(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Another caller may have refreshed while we waited.
	if !t.stale() {
		return nil
	}

	return t.refreshLocked(ctx)
}

func (t *Table) refreshLocked(ctx context.Context) error {
	start := time.Now()

	fetched, err := t.fetcher.FetchDurations(ctx)
	if err != nil {
		t.metrics.RecordLookupRefresh(time.Since(start).Seconds(), false)
		return fmt.Errorf("failed to fetch duration table: %w", err)
	}

	fresh := make(map[string]int, len(fetched))
	for name, minutes := range fetched {
		if minutes <= 0 {
			t.logger.Warn("ignoring non-positive duration in lookup table", "name", name, "minutes", minutes)
			continue
		}
		fresh[normalizeName(name)] = minutes
	}

	for name, minutes := range fresh {
		t.entries.Store(name, minutes)
	}
	t.entries.Range(func(name string, _ int) bool {
		if _, ok := fresh[name]; !ok {
			t.entries.Delete(name)
		}
		return true
	})

	t.loadedAt.Store(t.now().UnixNano())
	t.metrics.RecordLookupRefresh(time.Since(start).Seconds(), true)
	t.logger.Debug("duration table refreshed", "entries", len(fresh))

	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
