// Package history provides HistoryStore implementations for persisted solves.
//
//   - Memory: process-local store backed by a concurrent map
//   - KV: NATS JetStream KeyValue bucket shared by every service instance
//
// Both stores return records newest first from List and ErrRecordNotFound
// from Get for unknown IDs.
package history
