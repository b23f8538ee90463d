package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/teamsplit"
	"github.com/arloliu/teamsplit/types"

	splittest "github.com/arloliu/teamsplit/testing"
)

type solverFunc func(ctx context.Context, problem types.Problem) (*types.Result, error)

func (f solverFunc) Solve(ctx context.Context, problem types.Problem) (*types.Result, error) {
	return f(ctx, problem)
}

func startServer(t *testing.T, solver Solver, cfg Config) *Client {
	t.Helper()

	_, nc := splittest.StartEmbeddedNATS(t)

	if cfg.Subject == "" {
		cfg.Subject = "test.solve"
	}
	srv := New(nc, solver, cfg, WithLogger(splittest.NewTestLogger(t)))
	require.NoError(t, srv.Start(t.Context()))
	t.Cleanup(func() { _ = srv.Stop() })

	return NewClient(nc, cfg.Subject, 5*time.Second)
}

func TestServer_RoundTrip(t *testing.T) {
	cfg := teamsplit.TestConfig()
	solver, err := teamsplit.NewSolver(&cfg)
	require.NoError(t, err)

	client := startServer(t, solver, Config{QueueGroup: "test", DefaultTeamCount: 2, DefaultQuantum: 15})

	t.Run("solves with explicit parameters", func(t *testing.T) {
		res, err := client.Solve(t.Context(), types.Problem{
			Jobs:      splittest.Jobs(40, 40, 40, 40, 40),
			TeamCount: 3,
			Quantum:   40,
		})

		require.NoError(t, err)
		require.Len(t, res.Teams, 3)
		require.Equal(t, 80, res.MakespanMinutes)
		require.NotEmpty(t, res.ID)
	})

	t.Run("fills defaults for zero fields", func(t *testing.T) {
		res, err := client.Solve(t.Context(), types.Problem{
			Jobs: splittest.Jobs(60, 45, 45, 30),
		})

		require.NoError(t, err)
		require.Len(t, res.Teams, 2)
		require.Equal(t, 15, res.Quantum)
		require.Equal(t, 90, res.MakespanMinutes)
		require.Zero(t, res.GapMinutes)
	})

	t.Run("invalid input maps back to the sentinel", func(t *testing.T) {
		_, err := client.Solve(t.Context(), types.Problem{
			Jobs: []types.Job{{Name: "", DurationMinutes: 10}},
		})

		require.ErrorIs(t, err, types.ErrInvalidInput)
		require.Contains(t, err.Error(), "empty name")
	})
}

func TestServer_Errors(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		blocking := solverFunc(func(ctx context.Context, _ types.Problem) (*types.Result, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
		client := startServer(t, blocking, Config{RequestTimeout: 50 * time.Millisecond})

		_, err := client.Solve(t.Context(), types.Problem{Jobs: splittest.Jobs(10), TeamCount: 1, Quantum: 1})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		failing := solverFunc(func(context.Context, types.Problem) (*types.Result, error) {
			return nil, errors.New("boom")
		})
		client := startServer(t, failing, Config{})

		_, err := client.Solve(t.Context(), types.Problem{Jobs: splittest.Jobs(10), TeamCount: 1, Quantum: 1})
		require.ErrorIs(t, err, types.ErrRemote)
		require.Contains(t, err.Error(), "boom")
	})

	t.Run("no responders", func(t *testing.T) {
		_, nc := splittest.StartEmbeddedNATS(t)
		client := NewClient(nc, "nobody.home", time.Second)

		_, err := client.Solve(t.Context(), types.Problem{Jobs: splittest.Jobs(10), TeamCount: 1, Quantum: 1})
		require.ErrorIs(t, err, types.ErrServiceUnavailable)
	})
}

func TestServer_BadRequest(t *testing.T) {
	_, nc := splittest.StartEmbeddedNATS(t)
	srv := New(nc, solverFunc(func(context.Context, types.Problem) (*types.Result, error) {
		return &types.Result{}, nil
	}), Config{Subject: "test.raw"})
	require.NoError(t, srv.Start(t.Context()))
	defer func() { _ = srv.Stop() }()

	msg, err := nc.Request("test.raw", []byte("{not json"), 5*time.Second)
	require.NoError(t, err)
	require.Contains(t, string(msg.Data), CodeBadRequest)
}

func TestServer_Lifecycle(t *testing.T) {
	_, nc := splittest.StartEmbeddedNATS(t)

	var calls atomic.Int32
	srv := New(nc, solverFunc(func(context.Context, types.Problem) (*types.Result, error) {
		calls.Add(1)
		return &types.Result{ID: "ok"}, nil
	}), Config{Subject: "test.lifecycle", MaxInFlight: 2})

	require.ErrorIs(t, srv.Stop(), ErrNotStarted)
	require.NoError(t, srv.Start(t.Context()))
	require.ErrorIs(t, srv.Start(t.Context()), ErrAlreadyStarted)

	client := NewClient(nc, "test.lifecycle", 5*time.Second)
	for range 5 {
		res, err := client.Solve(t.Context(), types.Problem{Jobs: splittest.Jobs(10), TeamCount: 1, Quantum: 1})
		require.NoError(t, err)
		require.Equal(t, "ok", res.ID)
	}
	require.Equal(t, int32(5), calls.Load())

	require.NoError(t, srv.Stop())

	_, err := client.Solve(t.Context(), types.Problem{Jobs: splittest.Jobs(10), TeamCount: 1, Quantum: 1})
	require.ErrorIs(t, err, types.ErrServiceUnavailable)
}

func TestServer_StopAfterConnectionLoss(t *testing.T) {
	_, nc := splittest.StartEmbeddedNATS(t)

	var calls atomic.Int32
	srv := New(nc, solverFunc(func(context.Context, types.Problem) (*types.Result, error) {
		calls.Add(1)
		return &types.Result{ID: "ok"}, nil
	}), Config{Subject: "test.connloss", MaxInFlight: 1}, WithLogger(splittest.NewTestLogger(t)))
	require.NoError(t, srv.Start(t.Context()))

	nc.Close()

	done := make(chan error, 1)
	go func() { done <- srv.Stop() }()

	select {
	case err := <-done:
		require.Error(t, err, "drain on a closed connection fails")
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after connection loss")
	}

	// A message delivered after shutdown is turned away, not run.
	srv.dispatch(&nats.Msg{Subject: "test.connloss", Data: []byte(`{"jobs":[{"name":"a","durationMinutes":5}],"teamCount":1}`)})
	srv.wg.Wait()
	require.Zero(t, calls.Load())
}

func TestCodes(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{err: types.ErrInvalidInput, code: CodeInvalidInput},
		{err: types.ErrUnknownStrategy, code: CodeUnknownStrategy},
		{err: types.ErrNoTeams, code: CodeNoTeams},
		{err: context.DeadlineExceeded, code: CodeTimeout},
		{err: types.ErrServiceUnavailable, code: CodeUnavailable},
		{err: errors.New("other"), code: CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			code := codeFor(tt.err)
			require.Equal(t, tt.code, code)
			if code != CodeInternal {
				require.ErrorIs(t, errorFor(code), tt.err)
			}
		})
	}
}

func TestClient_RetriesUntilResponderAppears(t *testing.T) {
	_, nc := splittest.StartEmbeddedNATS(t)

	client := NewClient(nc, "test.late", 5*time.Second, WithRetry(RetryPolicy{
		Attempts:   20,
		Base:       20 * time.Millisecond,
		Multiplier: 1.5,
		Cap:        100 * time.Millisecond,
		Seed:       1,
	}))

	srv := New(nc, solverFunc(func(context.Context, types.Problem) (*types.Result, error) {
		return &types.Result{ID: "late"}, nil
	}), Config{Subject: "test.late"})

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = srv.Start(t.Context())
	}()
	t.Cleanup(func() { _ = srv.Stop() })

	res, err := client.Solve(t.Context(), types.Problem{Jobs: splittest.Jobs(10), TeamCount: 1, Quantum: 1})
	require.NoError(t, err)
	require.Equal(t, "late", res.ID)
}
