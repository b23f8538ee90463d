package lookup

import (
	"context"
	"errors"
	"maps"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arloliu/teamsplit/types"
	"github.com/stretchr/testify/require"
)

// countingFetcher returns the current table and counts fetches.
type countingFetcher struct {
	mu        sync.Mutex
	durations map[string]int
	err       error
	calls     atomic.Int32
}

func (f *countingFetcher) FetchDurations(_ context.Context) (map[string]int, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	return maps.Clone(f.durations), nil
}

func (f *countingFetcher) set(durations map[string]int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations = durations
	f.err = err
}

type lookupCounter struct {
	types.MetricsCollector
	hits, misses, refreshes, failures atomic.Int32
}

func (c *lookupCounter) RecordLookup(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
}

func (c *lookupCounter) RecordLookupRefresh(_ float64, success bool) {
	if success {
		c.refreshes.Add(1)
	} else {
		c.failures.Add(1)
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTable_Resolve(t *testing.T) {
	fetcher := &countingFetcher{durations: map[string]int{"12 Oak St": 90, "3 Elm Ave": 45}}
	counter := &lookupCounter{}
	table := NewTable(fetcher, WithMetrics(counter))

	minutes, err := table.Resolve(t.Context(), "12 Oak St")
	require.NoError(t, err)
	require.Equal(t, 90, minutes)

	minutes, err = table.Resolve(t.Context(), "  3 ELM AVE ")
	require.NoError(t, err)
	require.Equal(t, 45, minutes, "names match case-insensitively")

	_, err = table.Resolve(t.Context(), "unknown")
	require.ErrorIs(t, err, types.ErrLookupMiss)

	require.Equal(t, int32(1), fetcher.calls.Load(), "TTL 0 caches forever")
	require.Equal(t, int32(2), counter.hits.Load())
	require.Equal(t, int32(1), counter.misses.Load())
	require.Equal(t, int32(1), counter.refreshes.Load())
	require.Equal(t, 2, table.Len())
}

func TestTable_TTLRefresh(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	fetcher := &countingFetcher{durations: map[string]int{"a": 30, "b": 60}}
	table := NewTable(fetcher, WithTTL(time.Minute), withClock(clock.Now))

	_, err := table.Resolve(t.Context(), "a")
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	_, err = table.Resolve(t.Context(), "a")
	require.NoError(t, err)
	require.Equal(t, int32(1), fetcher.calls.Load())

	fetcher.set(map[string]int{"a": 35}, nil)
	clock.Advance(31 * time.Second)

	minutes, err := table.Resolve(t.Context(), "a")
	require.NoError(t, err)
	require.Equal(t, 35, minutes)
	require.Equal(t, int32(2), fetcher.calls.Load())

	_, err = table.Resolve(t.Context(), "b")
	require.ErrorIs(t, err, types.ErrLookupMiss, "entries removed upstream disappear")
}

func TestTable_ServesStaleOnRefreshFailure(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	fetcher := &countingFetcher{durations: map[string]int{"a": 30}}
	counter := &lookupCounter{}
	table := NewTable(fetcher, WithTTL(time.Second), withClock(clock.Now), WithMetrics(counter))

	require.NoError(t, table.Refresh(t.Context()))

	fetcher.set(nil, errors.New("file vanished"))
	clock.Advance(2 * time.Second)

	minutes, err := table.Resolve(t.Context(), "a")
	require.NoError(t, err)
	require.Equal(t, 30, minutes)
	require.Equal(t, int32(1), counter.failures.Load())
}

func TestTable_FirstFetchFailure(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("unreachable")}
	table := NewTable(fetcher)

	_, err := table.Resolve(t.Context(), "a")
	require.Error(t, err)
	require.NotErrorIs(t, err, types.ErrLookupMiss)
	require.Contains(t, err.Error(), "unreachable")
}

func TestTable_IgnoresNonPositiveEntries(t *testing.T) {
	table := NewTable(NewStaticFetcher(map[string]int{"ok": 20, "zero": 0, "neg": -5}))

	require.NoError(t, table.Refresh(t.Context()))
	require.Equal(t, 1, table.Len())

	_, err := table.Resolve(t.Context(), "zero")
	require.ErrorIs(t, err, types.ErrLookupMiss)
}

func TestTable_ConcurrentResolveFetchesOnce(t *testing.T) {
	fetcher := &countingFetcher{durations: map[string]int{"a": 30}}
	table := NewTable(fetcher, WithTTL(time.Hour), WithLogger(nil), WithMetrics(nil))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1) //nolint:revive // Standard pattern for concurrent operations
		go func() {
			defer wg.Done()
			minutes, err := table.Resolve(context.Background(), "a")
			if err != nil || minutes != 30 {
				t.Errorf("unexpected resolve result: %d, %v", minutes, err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), fetcher.calls.Load())
}

func TestNewTable_NegativeTTL(t *testing.T) {
	table := NewTable(NewStaticFetcher(nil), WithTTL(-time.Second))
	require.Zero(t, table.ttl)
}
