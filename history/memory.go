package history

import (
	"context"
	"fmt"

	"github.com/arloliu/teamsplit/types"
	"github.com/puzpuzpuz/xsync/v4"
)

// Memory is an in-process HistoryStore.
//
// Records live until the process exits. Safe for concurrent use.
type Memory struct {
	records *xsync.Map[string, types.HistoryRecord]
}

var _ types.HistoryStore = (*Memory)(nil)

// NewMemory creates an empty in-memory history store.
//
// Example:
//
//	solver, err := teamsplit.NewSolver(&cfg, teamsplit.WithHistory(history.NewMemory()))
func NewMemory() *Memory {
	return &Memory{records: xsync.NewMap[string, types.HistoryRecord]()}
}

// Save stores a record, replacing any record with the same ID.
func (m *Memory) Save(_ context.Context, record types.HistoryRecord) error {
	if record.ID == "" {
		return fmt.Errorf("%w: record ID is required", types.ErrInvalidInput)
	}

	m.records.Store(record.ID, record)

	return nil
}

// Get returns the record with the given ID.
func (m *Memory) Get(_ context.Context, id string) (types.HistoryRecord, error) {
	rec, ok := m.records.Load(id)
	if !ok {
		return types.HistoryRecord{}, fmt.Errorf("%w: %s", types.ErrRecordNotFound, id)
	}

	return rec, nil
}

// List returns up to limit records, newest first.
func (m *Memory) List(_ context.Context, limit int) ([]types.HistoryRecord, error) {
	records := make([]types.HistoryRecord, 0, m.records.Size())
	m.records.Range(func(_ string, rec types.HistoryRecord) bool {
		records = append(records, rec)
		return true
	})

	return newestFirst(records, limit), nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	return m.records.Size()
}
