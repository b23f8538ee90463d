package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/teamsplit"
	"github.com/arloliu/teamsplit/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer solve requests over NATS and expose Prometheus metrics",
		Long: `Run the solve service.

Requests arrive on nats.subject as JSON {jobs, teamCount, quantum} and are
answered with {result} or {error}. Instances sharing nats.queueGroup split
the load. Metrics are served on metrics.addr at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("metrics-addr") {
				a.cfg.Metrics.Addr = metricsAddr
			}

			return a.runServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", `metrics listen address (overrides metrics.addr, "" disables)`)

	return cmd
}

func (a *app) runServe(ctx context.Context) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := teamsplit.NewPrometheusMetrics(reg, a.cfg.Metrics.Namespace)

	nc, err := a.connect()
	if err != nil {
		return err
	}
	defer nc.Close()

	var store teamsplit.HistoryStore
	if a.cfg.History.Enabled {
		kv, err := a.openHistory(ctx, nc)
		if err != nil {
			return err
		}
		store = kv
	}

	solver, err := teamsplit.NewSolver(&a.cfg, a.solverOptions(metrics, store)...)
	if err != nil {
		return err
	}

	srv := server.New(nc, solver, server.Config{
		Subject:          a.cfg.NATS.Subject,
		QueueGroup:       a.cfg.NATS.QueueGroup,
		RequestTimeout:   a.cfg.NATS.RequestTimeout,
		DefaultTeamCount: a.cfg.DefaultTeamCount,
		DefaultQuantum:   a.cfg.DefaultQuantum,
	}, server.WithLogger(a.logger))

	var ln net.Listener
	if a.cfg.Metrics.Addr != "" {
		ln, err = net.Listen("tcp", a.cfg.Metrics.Addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", a.cfg.Metrics.Addr, err)
		}
	}

	g, gCtx := errgroup.WithContext(ctx)

	if err := srv.Start(gCtx); err != nil {
		if ln != nil {
			_ = ln.Close()
		}

		return err
	}

	g.Go(func() error {
		<-gCtx.Done()
		return srv.Stop()
	})

	if ln != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		httpServer := &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			a.logger.Info("metrics endpoint listening", "addr", ln.Addr().String())
			if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server failed: %w", err)
			}

			return nil
		})

		g.Go(func() error {
			<-gCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return httpServer.Shutdown(shutdownCtx)
		})
	}

	a.logger.Info("teamsplit service running",
		"nats", a.cfg.NATS.URL,
		"subject", a.cfg.NATS.Subject,
		"strategy", solver.Strategy(),
		"history", a.cfg.History.Enabled,
	)

	return g.Wait()
}
