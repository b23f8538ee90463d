// Package testing provides test utilities for the teamsplit library.
//
// This package offers helpers for setting up test environments, particularly
// an embedded NATS server for the request/reply service and the JetStream KV
// history store, plus reproducible job fixtures. It follows Go's convention of
// providing testing utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - Jobs, RandomProblem: Job fixtures
//
// Example usage:
//
//	import (
//	    "testing"
//	    splittest "github.com/arloliu/teamsplit/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := splittest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
