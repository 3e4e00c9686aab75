// Package utils holds small shared helpers with no domain knowledge.
package utils

import (
	"context"
	crand "crypto/rand"
	"math/big"
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between outbound requests with
// jitter. It keeps scraping polite when several sections refresh at once.
type RateLimiter struct {
	lastRequest time.Time
	interval    time.Duration
	mu          sync.Mutex
}

// NewRateLimiter creates a rate limiter with the specified interval.
// A non-positive interval disables waiting.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{interval: interval}
}

// Wait blocks until the interval since the previous request has elapsed or
// the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r.interval <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Jitter up to +20% of the interval to reduce thundering herd. It never
	// shortens the wait below the base interval.
	jitter := time.Duration(randomFraction(0.2) * float64(r.interval))
	waitTime := r.interval + jitter

	elapsed := time.Since(r.lastRequest)
	if elapsed < waitTime {
		select {
		case <-time.After(waitTime - elapsed):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.lastRequest = time.Now()
	return nil
}

// randomFraction returns a random float64 in the range [0, max). It uses
// crypto/rand to avoid gosec G404 warnings. If randomness fails, 0 is returned.
func randomFraction(max float64) float64 {
	const precision = 1_000_000
	n, err := crand.Int(crand.Reader, big.NewInt(precision))
	if err != nil {
		return 0
	}
	return (float64(n.Int64()) / precision) * max
}
