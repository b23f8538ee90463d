package server

import (
	rand "math/rand/v2"
	"time"
)

// RetryPolicy controls how a Client retries requests nobody answered.
//
// Delays follow decorrelated jitter: each delay is drawn from
// [Base, previous*Multiplier) and clipped to Cap.
type RetryPolicy struct {
	// Attempts is the total number of tries (1 = no retry).
	Attempts int

	// Base is the first and smallest delay (default 100ms).
	Base time.Duration

	// Multiplier grows the upper bound between attempts (default 2.0; < 1 means 1).
	Multiplier float64

	// Cap bounds any single delay (0 = no cap).
	Cap time.Duration

	// Seed makes the jitter deterministic when non-zero.
	Seed int64
}

// DefaultRetryPolicy rides out a responder restart without hammering the broker.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:   3,
		Base:       100 * time.Millisecond,
		Multiplier: 2.0,
		Cap:        2 * time.Second,
	}
}

// nextDelay returns the delay before the next attempt given the previous one.
func (p RetryPolicy) nextDelay(prev time.Duration, rng *rand.Rand) time.Duration {
	base := p.Base
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	mult := p.Multiplier
	if mult == 0 {
		mult = 2.0
	}
	mult = max(mult, 1.0)

	if p.Cap > 0 && p.Cap < base {
		return p.Cap
	}
	if prev <= 0 {
		return base
	}

	spread := time.Duration(float64(prev)*mult) - base
	if spread <= 0 {
		spread = base
	}

	var jitter int64
	if rng != nil {
		jitter = rng.Int64N(int64(spread))
	} else {
		jitter = rand.Int64N(int64(spread)) //nolint:gosec // non-crypto retry jitter
	}

	next := base + time.Duration(jitter)
	if p.Cap > 0 && next > p.Cap {
		return p.Cap
	}

	return next
}

// rng returns a seeded generator, or nil to use the package-level source.
//
//nolint:gosec
func (p RetryPolicy) rng() *rand.Rand {
	if p.Seed == 0 {
		return nil
	}
	s1 := uint64(p.Seed)

	return rand.New(rand.NewPCG(s1, s1^0x9e3779b97f4a7c15))
}
