package tracker

import (
	"context"
	"sync"
	"time"
)

// RateLimiter paces GitHub API calls
type RateLimiter interface {
	Wait(ctx context.Context) error
	UpdateLimit(remaining int, resetTime time.Time)
}

// githubRateLimiter implements RateLimiter for the GitHub API
type githubRateLimiter struct {
	mu        sync.Mutex
	remaining int
	resetTime time.Time
	minDelay  time.Duration
	lastCall  time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter() RateLimiter {
	return &githubRateLimiter{
		remaining: 5000, // GitHub API default limit
		resetTime: time.Now().Add(time.Hour),
		minDelay:  100 * time.Millisecond,
	}
}

// Wait blocks until it's safe to make another API call
func (r *githubRateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Wait for the reset when the remaining budget is nearly gone
	if r.remaining <= 5 {
		if d := time.Until(r.resetTime); d > 0 {
			if err := sleep(ctx, &r.mu, d); err != nil {
				return err
			}
		}
		r.remaining = 5000
		r.resetTime = time.Now().Add(time.Hour)
	}

	// Enforce the minimum delay between requests
	if elapsed := time.Since(r.lastCall); elapsed < r.minDelay {
		if err := sleep(ctx, &r.mu, r.minDelay-elapsed); err != nil {
			return err
		}
	}

	r.lastCall = time.Now()
	return nil
}

// UpdateLimit updates the rate limit from API response headers
func (r *githubRateLimiter) UpdateLimit(remaining int, resetTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining = remaining
	r.resetTime = resetTime
}

// sleep releases mu while waiting so UpdateLimit isn't blocked
func sleep(ctx context.Context, mu *sync.Mutex, d time.Duration) error {
	mu.Unlock()
	defer mu.Lock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
