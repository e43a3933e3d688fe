package middleware

import (
	"context"

	"item-service/pkg/log"
)

// StorageChecker reports whether the shared storage handle can serve requests.
type StorageChecker interface {
	Ready(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Storage         StorageChecker
	AllowOrigins    []string
	RateLimitPerMin int
}

type Middleware struct {
	l            log.Logger
	storage      StorageChecker
	allowOrigins []string
	limiter      *clientLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:            l,
		storage:      cfg.Storage,
		allowOrigins: cfg.AllowOrigins,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newClientLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
