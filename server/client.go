package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/teamsplit/internal/natsutil"
	"github.com/arloliu/teamsplit/types"
	"github.com/nats-io/nats.go"
)

// Client sends solve requests to a Server.
type Client struct {
	nc      *nats.Conn
	subject string
	timeout time.Duration
	retry   RetryPolicy
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithRetry retries requests that found no responder.
//
// Other failures, including remote solve errors, are never retried.
func WithRetry(policy RetryPolicy) ClientOption {
	return func(c *Client) {
		c.retry = policy
	}
}

// NewClient creates a solve client.
//
// Parameters:
//   - nc: Connected NATS connection
//   - subject: Request subject the server listens on
//   - timeout: Per-request timeout applied when ctx has no deadline (0 = none)
//   - opts: Optional settings (WithRetry)
//
// Returns:
//   - *Client: Ready-to-use client
func NewClient(nc *nats.Conn, subject string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{nc: nc, subject: subject, timeout: timeout, retry: RetryPolicy{Attempts: 1}}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Solve sends a problem and waits for the result.
//
// Zero TeamCount or Quantum are filled by the server defaults.
//
// Returns:
//   - *types.Result: The solve result
//   - error: ErrServiceUnavailable when nothing answers, or the sentinel
//     matching the remote error code wrapped with the remote message
func (c *Client) Solve(ctx context.Context, problem types.Problem) (*types.Result, error) {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	data, err := json.Marshal(Request{Jobs: problem.Jobs, TeamCount: problem.TeamCount, Quantum: problem.Quantum})
	if err != nil {
		return nil, fmt.Errorf("failed to encode solve request: %w", err)
	}

	msg, err := c.request(ctx, data)
	if err != nil {
		return nil, err
	}

	var resp Response
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode solve response: %w", err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("%w: %s", errorFor(resp.Error.Code), resp.Error.Message)
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("%w: empty response", types.ErrRemote)
	}

	return resp.Result, nil
}

// request sends data, retrying while no responder is listening.
func (c *Client) request(ctx context.Context, data []byte) (*nats.Msg, error) {
	rng := c.retry.rng()
	attempts := max(c.retry.Attempts, 1)

	var delay time.Duration
	for attempt := 1; ; attempt++ {
		msg, err := c.nc.RequestWithContext(ctx, c.subject, data)
		if err == nil {
			return msg, nil
		}

		if !errors.Is(err, nats.ErrNoResponders) || attempt >= attempts {
			if natsutil.IsConnectivityError(err) {
				return nil, fmt.Errorf("%w: %w", types.ErrServiceUnavailable, err)
			}

			return nil, fmt.Errorf("solve request failed: %w", err)
		}

		delay = c.retry.nextDelay(delay, rng)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", types.ErrServiceUnavailable, err)
		case <-time.After(delay):
		}
	}
}
