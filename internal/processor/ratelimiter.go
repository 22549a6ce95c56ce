package processor

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/nyayasetu/classifier/internal/logging"
	"github.com/nyayasetu/classifier/internal/telemetry"
)

// defaultRPS is the fallback request rate when none is configured.
const defaultRPS = 100

// RateLimiter throttles classification work against the archive and the
// database.
type RateLimiter struct {
	limiter   *rate.Limiter
	telemetry *telemetry.Provider
	logger    logging.Logger
}

// NewRateLimiter creates a new rate limiter. rps is requests per second,
// burst the maximum burst size.
func NewRateLimiter(rps, burst int, tp *telemetry.Provider, logger logging.Logger) *RateLimiter {
	if rps <= 0 {
		rps = defaultRPS
	}
	if burst <= 0 {
		burst = rps
	}

	return &RateLimiter{
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		telemetry: tp,
		logger:    logger,
	}
}

// Wait blocks until the rate limit allows the operation.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r.limiter.Tokens() < 1 {
		r.telemetry.IncrementThrottleCount()
	}
	if err := r.limiter.Wait(ctx); err != nil {
		r.logger.Warn("Rate limiter wait failed", logging.Error(err))
		return err
	}
	return nil
}

// Allow reports whether an operation is allowed without waiting.
func (r *RateLimiter) Allow() bool {
	allowed := r.limiter.Allow()
	if !allowed {
		r.telemetry.IncrementThrottleCount()
	}
	return allowed
}

// SetLimit updates the rate limit.
func (r *RateLimiter) SetLimit(rps int) {
	r.limiter.SetLimit(rate.Limit(rps))
	r.logger.Info("Rate limit updated", logging.Int("new_rps", rps))
}

// SetBurst updates the burst size.
func (r *RateLimiter) SetBurst(burst int) {
	r.limiter.SetBurst(burst)
	r.logger.Info("Burst size updated", logging.Int("new_burst", burst))
}
