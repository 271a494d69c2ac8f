package realtime

import "time"

// RateLimiter is a per-connection sliding-window limiter over the last
// limit event timestamps, kept in a fixed ring.
// It is owned by a single reader loop and is not safe for concurrent use.
type RateLimiter struct {
	ring   []time.Time
	next   int
	filled int
	window time.Duration
}

// NewRateLimiter constructs a RateLimiter with safe defaults when inputs are invalid.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = rateLimitEvents
	}
	if window <= 0 {
		window = rateLimitWindow
	}
	return &RateLimiter{
		ring:   make([]time.Time, limit),
		window: window,
	}
}

// Allow reports whether an event at time "now" should be permitted.
// Rejected events are not recorded.
func (r *RateLimiter) Allow(now time.Time) bool {
	if r.filled == len(r.ring) {
		// r.next holds the oldest recorded event.
		if now.Sub(r.ring[r.next]) < r.window {
			return false
		}
	} else {
		r.filled++
	}

	r.ring[r.next] = now
	r.next = (r.next + 1) % len(r.ring)
	return true
}
