package middleware

import (
	"time"

	"task-scheduler/pkg/log"
)

// RateLimitConfig bounds how often a single caller may hit the API.
type RateLimitConfig struct {
	RequestsPerMin int
	MaxKeys        int
	TTL            time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rl),
	}
}
