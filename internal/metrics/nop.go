package metrics

import "github.com/arloliu/teamsplit/types"

// NopMetrics is a no-op implementation of MetricsCollector.
//
// This is the default metrics collector used when no custom collector is provided,
// eliminating the need for nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A metrics collector that discards all metrics
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SolverMetrics implementation

// RecordSolve is a no-op implementation.
func (n *NopMetrics) RecordSolve(_ /* strategy */ string, _ /* duration */ float64, _ /* success */ bool) {
}

// RecordJobCount is a no-op implementation.
func (n *NopMetrics) RecordJobCount(_ /* fixed */, _ /* free */ int) {}

// SearchMetrics implementation

// RecordSearch is a no-op implementation.
func (n *NopMetrics) RecordSearch(_ /* stats */ types.SearchStats) {}

// RecordMakespan is a no-op implementation.
func (n *NopMetrics) RecordMakespan(_ /* baseline */, _ /* final */ int) {}

// HistoryMetrics implementation

// RecordHistoryOperation is a no-op implementation.
func (n *NopMetrics) RecordHistoryOperation(_ /* operation */ string, _ /* duration */ float64, _ /* success */ bool) {
}

// LookupMetrics implementation

// RecordLookup is a no-op implementation.
func (n *NopMetrics) RecordLookup(_ /* hit */ bool) {}

// RecordLookupRefresh is a no-op implementation.
func (n *NopMetrics) RecordLookupRefresh(_ /* duration */ float64, _ /* success */ bool) {}
