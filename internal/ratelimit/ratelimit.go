// Package ratelimit throttles how fast a batch opens documents.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

type Limiter struct {
	limiter *rate.Limiter
}

// New returns a limiter allowing filesPerSecond reads with a burst of one.
// Zero or negative means unlimited.
func New(filesPerSecond float64) *Limiter {
	if filesPerSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	return &Limiter{limiter: rate.NewLimiter(rate.Limit(filesPerSecond), 1)}
}

// Wait blocks until the next file may be opened or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Limit reports the configured rate; 0 means unlimited.
func (l *Limiter) Limit() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return float64(limit)
}
