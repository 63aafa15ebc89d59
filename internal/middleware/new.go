package middleware

import (
	"time"

	"task-nlp/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
	MaxClients       int
	ClientTTL        time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxClients, cfg.ClientTTL)
	}
	return mw
}
