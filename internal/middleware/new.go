package middleware

import (
	"student-productivity/pkg/log"
	"student-productivity/pkg/reporter"
	"student-productivity/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
	reporter   reporter.Reporter
}

// Config tunes the per-caller rate limiter.
type Config struct {
	RequestsPerMinute int
	Burst             int
}

func New(l log.Logger, jwtManager scope.Manager, rep reporter.Reporter, cfg Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(cfg.RequestsPerMinute, cfg.Burst),
		reporter:   rep,
	}
}
