package cli

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/teamsplit"
	"github.com/arloliu/teamsplit/history"
	"github.com/arloliu/teamsplit/internal/natsutil"
	"github.com/arloliu/teamsplit/lookup"
)

// connect dials the configured NATS server.
func (a *app) connect() (*nats.Conn, error) {
	nc, err := nats.Connect(a.cfg.NATS.URL,
		nats.Name("teamsplit"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		if natsutil.IsConnectivityError(err) {
			return nil, fmt.Errorf("%w: %s: %w", teamsplit.ErrServiceUnavailable, a.cfg.NATS.URL, err)
		}

		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", a.cfg.NATS.URL, err)
	}

	return nc, nil
}

// openHistory opens the JetStream KV history bucket.
func (a *app) openHistory(ctx context.Context, nc *nats.Conn) (*history.KV, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return history.NewKV(ctx, js, history.KVConfig{
		Bucket: a.cfg.History.Bucket,
		TTL:    a.cfg.History.TTL,
	}, history.WithKVLogger(a.logger))
}

// lookupTable returns the duration table, or nil when no file is configured.
func (a *app) lookupTable(metrics teamsplit.MetricsCollector) *lookup.Table {
	if a.cfg.Lookup.File == "" {
		return nil
	}

	opts := []lookup.TableOption{
		lookup.WithTTL(a.cfg.Lookup.TTL),
		lookup.WithLogger(a.logger),
	}
	if metrics != nil {
		opts = append(opts, lookup.WithMetrics(metrics))
	}

	return lookup.NewTable(lookup.NewFileFetcher(a.cfg.Lookup.File), opts...)
}

// solverOptions assembles the optional Solver dependencies shared by solve and serve.
func (a *app) solverOptions(metrics teamsplit.MetricsCollector, store teamsplit.HistoryStore) []teamsplit.Option {
	opts := []teamsplit.Option{teamsplit.WithLogger(a.logger)}
	if metrics != nil {
		opts = append(opts, teamsplit.WithMetrics(metrics))
	}
	if store != nil {
		opts = append(opts, teamsplit.WithHistory(store))
	}
	if table := a.lookupTable(metrics); table != nil {
		opts = append(opts, teamsplit.WithDurationLookup(table))
	}

	return opts
}
