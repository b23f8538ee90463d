// Package kvutil provides helpers for NATS JetStream KeyValue buckets holding JSON documents.
package kvutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/teamsplit/types"
	"github.com/nats-io/nats.go/jetstream"
)

// defaultRetries is used when EnsureKVBucketWithRetry is called with maxRetries <= 0.
const defaultRetries = 3

// EnsureKVBucketWithRetry creates or opens a KV bucket with retry logic.
//
// Several service instances starting together race to create the same
// bucket; a loser of that race opens the existing bucket instead. Transient
// failures are retried with exponential backoff.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream context
//   - config: KV bucket configuration
//   - maxRetries: Maximum number of attempts (default: 3)
//
// Returns:
//   - jetstream.KeyValue: The KV bucket instance
//   - error: Last error after all attempts
//
// Example:
//
//	kv, err := kvutil.EnsureKVBucketWithRetry(ctx, js, jetstream.KeyValueConfig{
//	    Bucket: "teamsplit-history",
//	    TTL:    7 * 24 * time.Hour,
//	}, 3)
func EnsureKVBucketWithRetry(
	ctx context.Context,
	js jetstream.JetStream,
	config jetstream.KeyValueConfig,
	maxRetries int,
) (jetstream.KeyValue, error) {
	if maxRetries <= 0 {
		maxRetries = defaultRetries
	}

	var lastErr error

	for attempt := range maxRetries {
		kv, err := js.CreateKeyValue(ctx, config)
		if err == nil {
			return kv, nil
		}

		if errors.Is(err, jetstream.ErrBucketExists) {
			kv, openErr := js.KeyValue(ctx, config.Bucket)
			if openErr == nil {
				return kv, nil
			}
			lastErr = fmt.Errorf("bucket exists but failed to open: %w", openErr)
		} else {
			lastErr = err
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled during KV bucket creation: %w", ctx.Err())
		}

		// Exponential backoff: 10ms, 20ms, 40ms...
		if attempt < maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * 10 * time.Millisecond //nolint:gosec // attempt is bounded by maxRetries
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to create/open KV bucket %s after %d attempts: %w",
		config.Bucket, maxRetries, lastErr)
}

// PutJSON marshals v and stores it under key.
//
// Returns:
//   - uint64: Revision of the stored entry
//   - error: Marshal or put error
func PutJSON(ctx context.Context, kv jetstream.KeyValue, key string, v any) (uint64, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	rev, err := kv.Put(ctx, key, data)
	if err != nil {
		return 0, fmt.Errorf("failed to put %s: %w", key, err)
	}

	return rev, nil
}

// GetJSON loads key and unmarshals it into a T.
//
// Returns:
//   - T: Decoded value
//   - error: jetstream.ErrKeyNotFound (wrapped) for missing keys, or a decode error
func GetJSON[T any](ctx context.Context, kv jetstream.KeyValue, key string) (T, error) {
	var v T

	entry, err := kv.Get(ctx, key)
	if err != nil {
		return v, fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal(entry.Value(), &v); err != nil {
		return v, fmt.Errorf("malformed value at %s: %w", key, err)
	}

	return v, nil
}

// ListKeys returns every key in the bucket. An empty bucket yields an empty slice.
func ListKeys(ctx context.Context, kv jetstream.KeyValue) ([]string, error) {
	keys, err := kv.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) || types.IsNoKeysFoundError(err) {
			return []string{}, nil
		}

		return nil, fmt.Errorf("failed to list KV keys: %w", err)
	}

	return keys, nil
}
