package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "item-service/pkg/errors"
	"item-service/pkg/response"
)

const (
	rateLimitMaxClients = 1000
	rateLimitIdleTTL    = 5 * time.Minute
)

// RateLimit enforces a per-client-IP budget. It is a no-op when no limit is configured.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if err := m.limiter.allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %v", err)
			response.Error(c, pkgErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// clientLimiter hands out one token bucket per client key. Idle buckets expire.
type clientLimiter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, *rate.Limiter]
	every   rate.Limit
	burst   int
}

// newClientLimiter spreads perMin requests over the minute, bursting up to a
// tenth of them (at least one).
func newClientLimiter(perMin int) *clientLimiter {
	return &clientLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](rateLimitMaxClients, nil, rateLimitIdleTTL),
		every:   rate.Limit(float64(perMin) / 60.0),
		burst:   max(perMin/10, 1),
	}
}

func (cl *clientLimiter) bucket(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if b, ok := cl.buckets.Get(key); ok {
		return b
	}
	b := rate.NewLimiter(cl.every, cl.burst)
	cl.buckets.Add(key, b)
	return b
}

func (cl *clientLimiter) allow(key string) error {
	if !cl.bucket(key).Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
