package metrics

import (
	"strconv"
	"sync"

	"github.com/arloliu/teamsplit/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	*NopMetrics

	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Solver metrics
	solveDuration *prometheus.HistogramVec
	solveTotal    *prometheus.CounterVec
	jobsTotal     *prometheus.CounterVec

	// Search metrics
	searchNodes      prometheus.Histogram
	searchPrunes     *prometheus.CounterVec
	searchImproves   prometheus.Counter
	searchExhausted  prometheus.Counter
	searchOptimal    prometheus.Counter
	makespanBaseline prometheus.Gauge
	makespanFinal    prometheus.Gauge

	// History metrics
	historyDuration *prometheus.HistogramVec

	// Lookup metrics
	lookupTotal     *prometheus.CounterVec
	lookupRefreshes *prometheus.CounterVec
	lookupRefreshS  prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "teamsplit" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "teamsplit"
	}

	return &PrometheusCollector{NopMetrics: NewNop(), reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Duration of solve requests in seconds by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10), // 0.5ms .. ~130s
		}, []string{"strategy"})

		p.solveTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Total solve requests by strategy and result (success,failure).",
		}, []string{"strategy", "result"})

		p.jobsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "jobs_total",
			Help:      "Total jobs submitted by kind (fixed,free).",
		}, []string{"kind"})

		p.searchNodes = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "nodes",
			Help:      "Search nodes visited per exact solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 9), // 1 .. 1e8
		})

		p.searchPrunes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "prunes_total",
			Help:      "Total search prunes by reason (bound,memo,symmetry).",
		}, []string{"reason"})

		p.searchImproves = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "improvements_total",
			Help:      "Total incumbent improvements found by the search.",
		})

		p.searchExhausted = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "budget_exhausted_total",
			Help:      "Total searches stopped by node limit, deadline or cancellation.",
		})

		p.searchOptimal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "optimal_total",
			Help:      "Total searches that completed with a proven optimum.",
		})

		p.makespanBaseline = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "baseline_makespan_weight",
			Help:      "Greedy baseline makespan of the last solve in weight units.",
		})

		p.makespanFinal = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "final_makespan_weight",
			Help:      "Final makespan of the last solve in weight units.",
		})

		p.historyDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "history",
			Name:      "operation_duration_seconds",
			Help:      "History store operation latency by operation and result.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation", "result"})

		p.lookupTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "lookup",
			Name:      "lookups_total",
			Help:      "Total duration lookups by outcome (hit,miss).",
		}, []string{"outcome"})

		p.lookupRefreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "lookup",
			Name:      "refreshes_total",
			Help:      "Total lookup table refreshes by result (success,failure).",
		}, []string{"result"})

		p.lookupRefreshS = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "lookup",
			Name:      "refresh_duration_seconds",
			Help:      "Latency of lookup table refreshes in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		})

		p.reg.MustRegister(p.solveDuration)
		p.reg.MustRegister(p.solveTotal)
		p.reg.MustRegister(p.jobsTotal)
		p.reg.MustRegister(p.searchNodes)
		p.reg.MustRegister(p.searchPrunes)
		p.reg.MustRegister(p.searchImproves)
		p.reg.MustRegister(p.searchExhausted)
		p.reg.MustRegister(p.searchOptimal)
		p.reg.MustRegister(p.makespanBaseline)
		p.reg.MustRegister(p.makespanFinal)
		p.reg.MustRegister(p.historyDuration)
		p.reg.MustRegister(p.lookupTotal)
		p.reg.MustRegister(p.lookupRefreshes)
		p.reg.MustRegister(p.lookupRefreshS)
	})
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

// SolverMetrics implementation

// RecordSolve observes solve latency and counts the outcome.
func (p *PrometheusCollector) RecordSolve(strategy string, duration float64, success bool) {
	p.ensureRegistered()
	p.solveDuration.WithLabelValues(strategy).Observe(duration)
	p.solveTotal.WithLabelValues(strategy, resultLabel(success)).Inc()
}

// RecordJobCount adds the fixed and free job counts.
func (p *PrometheusCollector) RecordJobCount(fixed, free int) {
	p.ensureRegistered()
	p.jobsTotal.WithLabelValues("fixed").Add(float64(fixed))
	p.jobsTotal.WithLabelValues("free").Add(float64(free))
}

// SearchMetrics implementation

// RecordSearch records node counts, prunes and the termination reason.
func (p *PrometheusCollector) RecordSearch(stats types.SearchStats) {
	p.ensureRegistered()
	p.searchNodes.Observe(float64(stats.Nodes))
	p.searchPrunes.WithLabelValues("bound").Add(float64(stats.BoundPrunes))
	p.searchPrunes.WithLabelValues("memo").Add(float64(stats.MemoPrunes))
	p.searchPrunes.WithLabelValues("symmetry").Add(float64(stats.SymmetrySkips))
	p.searchImproves.Add(float64(stats.Improvements))

	if stats.Exhausted {
		p.searchExhausted.Inc()
	}
	if stats.Optimal {
		p.searchOptimal.Inc()
	}
}

// RecordMakespan sets the baseline and final makespan gauges.
func (p *PrometheusCollector) RecordMakespan(baseline, final int) {
	p.ensureRegistered()
	p.makespanBaseline.Set(float64(baseline))
	p.makespanFinal.Set(float64(final))
}

// HistoryMetrics implementation

// RecordHistoryOperation observes history store latency.
func (p *PrometheusCollector) RecordHistoryOperation(operation string, duration float64, success bool) {
	p.ensureRegistered()
	p.historyDuration.WithLabelValues(operation, resultLabel(success)).Observe(duration)
}

// LookupMetrics implementation

// RecordLookup counts a lookup hit or miss.
func (p *PrometheusCollector) RecordLookup(hit bool) {
	p.ensureRegistered()
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	p.lookupTotal.WithLabelValues(outcome).Inc()
}

// RecordLookupRefresh observes refresh latency and counts the outcome.
func (p *PrometheusCollector) RecordLookupRefresh(duration float64, success bool) {
	p.ensureRegistered()
	p.lookupRefreshS.Observe(duration)
	p.lookupRefreshes.WithLabelValues(resultLabel(success)).Inc()
}

// Namespace returns the metrics namespace in use.
func (p *PrometheusCollector) Namespace() string {
	return p.namespace
}

// String implements fmt.Stringer for debugging.
func (p *PrometheusCollector) String() string {
	return "PrometheusCollector{namespace=" + strconv.Quote(p.namespace) + "}"
}
