package metrics

import (
	"testing"
	"time"

	"github.com/arloliu/teamsplit/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_SolverMetrics(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordSolve("exact", 0.25, true)
		metrics.RecordSolve("", -1, false)
		metrics.RecordJobCount(3, 12)
		metrics.RecordJobCount(0, 0)
	})
}

func TestNopMetrics_SearchMetrics(t *testing.T) {
	metrics := NewNop()

	require.NotPanics(t, func() {
		metrics.RecordSearch(types.SearchStats{Nodes: 1000, Elapsed: time.Millisecond, Optimal: true})
		metrics.RecordSearch(types.SearchStats{})
		metrics.RecordMakespan(12, 10)
	})
}

func TestNopMetrics_HistoryAndLookup(t *testing.T) {
	metrics := NewNop()

	require.NotPanics(t, func() {
		metrics.RecordHistoryOperation("save", 0.01, true)
		metrics.RecordHistoryOperation("list", 0, false)
		metrics.RecordLookup(true)
		metrics.RecordLookup(false)
		metrics.RecordLookupRefresh(0.5, true)
	})
}

func TestNopMetrics_ImplementsInterface(t *testing.T) {
	var _ types.MetricsCollector = NewNop()
}
