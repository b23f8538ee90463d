package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/arloliu/teamsplit/internal/logging"
	"github.com/arloliu/teamsplit/types"
	"github.com/nats-io/nats.go"
	"golang.org/x/sync/semaphore"
)

const drainTimeout = 30 * time.Second

// Common errors for server lifecycle operations.
var (
	ErrNotStarted     = errors.New("server not started")
	ErrAlreadyStarted = errors.New("server already started")
)

// Solver is the subset of teamsplit.Solver the server needs.
type Solver interface {
	Solve(ctx context.Context, problem types.Problem) (*types.Result, error)
}

// Config configures a Server.
type Config struct {
	// Subject is the request subject (e.g., "teamsplit.solve").
	Subject string

	// QueueGroup load-balances requests across responders. Empty disables it.
	QueueGroup string

	// RequestTimeout bounds a single solve (0 = no bound).
	RequestTimeout time.Duration

	// DefaultTeamCount and DefaultQuantum fill zero request fields.
	DefaultTeamCount int
	DefaultQuantum   int

	// MaxInFlight caps concurrent solves (default: runtime.NumCPU()).
	MaxInFlight int
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger types.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// Server answers solve requests on a NATS subject.
type Server struct {
	nc     *nats.Conn
	solver Solver
	cfg    Config
	logger types.Logger
	sem    *semaphore.Weighted

	mu      sync.Mutex
	started bool
	closed  bool // no new work admitted; guards wg.Add against Stop's wg.Wait
	sub     *nats.Subscription
	ctx     context.Context //nolint:containedctx
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a new solve server.
//
// Parameters:
//   - nc: Connected NATS connection
//   - solver: Solver handling each request
//   - cfg: Subject, queue group, timeout and request defaults
//   - opts: Optional dependencies (WithLogger)
//
// Returns:
//   - *Server: Server ready to Start
func New(nc *nats.Conn, solver Solver, cfg Config, opts ...Option) *Server {
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = runtime.NumCPU()
	}

	s := &Server{
		nc:     nc,
		solver: solver,
		cfg:    cfg,
		logger: logging.NewNop(),
		sem:    semaphore.NewWeighted(int64(cfg.MaxInFlight)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start subscribes to the request subject.
//
// Requests are handled on their own goroutines, at most MaxInFlight at a
// time. Canceling ctx aborts in-flight solves.
//
// Parameters:
//   - ctx: Parent context for every solve
//
// Returns:
//   - error: ErrAlreadyStarted, or the subscription error
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.closed = false

	var (
		sub *nats.Subscription
		err error
	)
	if s.cfg.QueueGroup != "" {
		sub, err = s.nc.QueueSubscribe(s.cfg.Subject, s.cfg.QueueGroup, s.dispatch)
	} else {
		sub, err = s.nc.Subscribe(s.cfg.Subject, s.dispatch)
	}
	if err != nil {
		s.cancel()
		return fmt.Errorf("failed to subscribe to %s: %w", s.cfg.Subject, err)
	}

	s.sub = sub
	s.started = true
	s.logger.Info("solve server started", "subject", s.cfg.Subject, "queue_group", s.cfg.QueueGroup)

	return nil
}

// Stop unsubscribes and waits for in-flight solves to reply.
//
// Returns:
//   - error: ErrNotStarted if not running, or the drain error
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.started = false
	sub := s.sub
	s.mu.Unlock()

	err := sub.Drain()
	s.waitDrained(sub)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.wg.Wait()
	s.cancel()

	s.logger.Info("solve server stopped", "subject", s.cfg.Subject)

	if err != nil {
		return fmt.Errorf("failed to drain subscription: %w", err)
	}

	return nil
}

// waitDrained blocks until the subscription has delivered its pending
// messages and closed, or drainTimeout passes. Later deliveries are turned
// away by the closed flag.
func (s *Server) waitDrained(sub *nats.Subscription) {
	deadline := time.Now().Add(drainTimeout)
	for sub.IsValid() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
}

// dispatch hands the message to a worker goroutine.
func (s *Server) dispatch(msg *nats.Msg) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.reply(msg, Response{Error: &ErrorBody{Code: CodeUnavailable, Message: "server shutting down"}})

		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	if err := s.sem.Acquire(s.ctx, 1); err != nil {
		s.wg.Done()
		s.reply(msg, Response{Error: &ErrorBody{Code: CodeUnavailable, Message: "server shutting down"}})

		return
	}

	go func() {
		defer s.wg.Done()
		defer s.sem.Release(1)

		s.reply(msg, s.handle(msg.Data))
	}()
}

// handle decodes and solves a single request.
func (s *Server) handle(data []byte) Response {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Response{Error: &ErrorBody{Code: CodeBadRequest, Message: err.Error()}}
	}

	problem := types.Problem{Jobs: req.Jobs, TeamCount: req.TeamCount, Quantum: req.Quantum}
	if problem.TeamCount == 0 {
		problem.TeamCount = s.cfg.DefaultTeamCount
	}
	if problem.Quantum == 0 {
		problem.Quantum = s.cfg.DefaultQuantum
	}

	ctx := s.ctx
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	res, err := s.solver.Solve(ctx, problem)
	if err != nil {
		code := codeFor(err)
		if code == CodeInternal {
			s.logger.Error("solve request failed", "error", err)
		} else {
			s.logger.Debug("solve request rejected", "code", code, "error", err)
		}

		return Response{Error: &ErrorBody{Code: code, Message: err.Error()}}
	}

	return Response{Result: res}
}

func (s *Server) reply(msg *nats.Msg, resp Response) {
	if msg.Reply == "" {
		s.logger.Warn("dropping solve request without reply subject", "subject", msg.Subject)
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to encode solve response", "error", err)
		return
	}

	if err := msg.Respond(data); err != nil {
		s.logger.Error("failed to send solve response", "error", err)
	}
}
