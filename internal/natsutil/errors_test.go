package natsutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/arloliu/teamsplit/types"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

func TestIsConnectivityError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "service unavailable", err: types.ErrServiceUnavailable, want: true},
		{name: "timeout", err: nats.ErrTimeout, want: true},
		{name: "no responders", err: fmt.Errorf("request failed: %w", nats.ErrNoResponders), want: true},
		{name: "no servers", err: nats.ErrNoServers, want: true},
		{name: "closed", err: nats.ErrConnectionClosed, want: true},
		{name: "dial refused", err: errors.New("dial tcp 127.0.0.1:4222: connect: connection refused"), want: true},
		{name: "invalid input", err: types.ErrInvalidInput, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsConnectivityError(tt.err))
		})
	}
}
