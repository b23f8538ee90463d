package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/teamsplit/internal/kvutil"
	"github.com/arloliu/teamsplit/internal/logging"
	"github.com/arloliu/teamsplit/types"
	"github.com/nats-io/nats.go/jetstream"
)

// KVConfig configures the JetStream KV history bucket.
type KVConfig struct {
	// Bucket is the KV bucket name.
	Bucket string

	// TTL expires records after this long (0 = never).
	TTL time.Duration

	// Replicas is the bucket replication factor (0 = server default).
	Replicas int
}

// KV is a HistoryStore backed by a NATS JetStream KeyValue bucket.
//
// Records are stored as JSON under their ID. Safe for concurrent use.
type KV struct {
	kv     jetstream.KeyValue
	logger types.Logger
}

var _ types.HistoryStore = (*KV)(nil)

// KVOption configures a KV store.
type KVOption func(*KV)

// WithKVLogger sets the logger used for skipped or malformed records.
func WithKVLogger(logger types.Logger) KVOption {
	return func(k *KV) {
		k.logger = logger
	}
}

// NewKV creates or opens the history bucket and returns a store on top of it.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - js: JetStream context
//   - cfg: Bucket configuration
//   - opts: Optional configuration (WithKVLogger)
//
// Returns:
//   - *KV: History store
//   - error: Bucket creation error
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	store, err := history.NewKV(ctx, js, history.KVConfig{Bucket: cfg.History.Bucket, TTL: cfg.History.TTL})
func NewKV(ctx context.Context, js jetstream.JetStream, cfg KVConfig, opts ...KVOption) (*KV, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: history bucket name is required", types.ErrInvalidConfig)
	}

	kv, err := kvutil.EnsureKVBucketWithRetry(ctx, js, jetstream.KeyValueConfig{
		Bucket:      cfg.Bucket,
		Description: "teamsplit solve history",
		TTL:         cfg.TTL,
		Replicas:    cfg.Replicas,
	}, 3)
	if err != nil {
		return nil, err
	}

	return NewKVFromBucket(kv, opts...), nil
}

// NewKVFromBucket wraps an existing KeyValue bucket.
func NewKVFromBucket(kv jetstream.KeyValue, opts ...KVOption) *KV {
	k := &KV{kv: kv, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(k)
	}
	if k.logger == nil {
		k.logger = logging.NewNop()
	}

	return k
}

// Save stores a record as JSON under its ID.
func (k *KV) Save(ctx context.Context, record types.HistoryRecord) error {
	if record.ID == "" {
		return fmt.Errorf("%w: record ID is required", types.ErrInvalidInput)
	}

	if _, err := kvutil.PutJSON(ctx, k.kv, record.ID, record); err != nil {
		return fmt.Errorf("failed to save history record: %w", err)
	}

	return nil
}

// Get returns the record with the given ID.
func (k *KV) Get(ctx context.Context, id string) (types.HistoryRecord, error) {
	rec, err := kvutil.GetJSON[types.HistoryRecord](ctx, k.kv, id)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrInvalidKey) {
			return types.HistoryRecord{}, fmt.Errorf("%w: %s", types.ErrRecordNotFound, id)
		}

		return types.HistoryRecord{}, err
	}

	return rec, nil
}

// List returns up to limit records, newest first.
//
// Unreadable or malformed entries are skipped with a debug log.
func (k *KV) List(ctx context.Context, limit int) ([]types.HistoryRecord, error) {
	keys, err := kvutil.ListKeys(ctx, k.kv)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	records := make([]types.HistoryRecord, 0, len(keys))
	for _, key := range keys {
		rec, err := k.Get(ctx, key)
		if err != nil {
			k.logger.Debug("skipping history record", "key", key, "error", err)
			continue
		}
		records = append(records, rec)
	}

	return newestFirst(records, limit), nil
}
