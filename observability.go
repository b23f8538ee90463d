package teamsplit

import (
	"log/slog"

	"github.com/arloliu/teamsplit/internal/logging"
	"github.com/arloliu/teamsplit/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// NewSlogLogger wraps a *slog.Logger as a Logger.
//
// Parameters:
//   - logger: slog logger to wrap (slog.Default() if nil)
//
// Returns:
//   - Logger: Logger backed by slog
func NewSlogLogger(logger *slog.Logger) Logger {
	if logger == nil {
		return logging.NewSlogDefault()
	}

	return logging.NewSlog(logger)
}

// NewPrometheusMetrics creates a Prometheus-backed MetricsCollector.
//
// Parameters:
//   - reg: Registerer to register collectors with (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("teamsplit" if empty)
//
// Returns:
//   - MetricsCollector: Collector suitable for WithMetrics
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
