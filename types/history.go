package types

import (
	"context"
	"time"
)

// HistoryRecord is a persisted solve.
type HistoryRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Problem   Problem   `json:"problem"`
	Result    Result    `json:"result"`
}

// HistoryStore persists solve records.
//
// Implementations must be safe for concurrent use.
type HistoryStore interface {
	// Save stores a record, replacing any record with the same ID.
	Save(ctx context.Context, record HistoryRecord) error

	// Get returns the record with the given ID or ErrRecordNotFound.
	Get(ctx context.Context, id string) (HistoryRecord, error)

	// List returns up to limit records, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]HistoryRecord, error)
}
