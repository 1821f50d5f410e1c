package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a per-provider request budget using a token bucket.
//
// Provider quotas are documented as requests-per-second or requests-per-day,
// so the bucket is parameterized by the minimum interval between requests
// with a burst of one: the first call proceeds immediately and every
// subsequent call waits for the next token. Unlike a fixed sleep between
// calls, the budget holds even if callers ever become concurrent.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a pacer allowing one request per interval.
// A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next request is allowed or the context is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
