package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/pantrychef-api/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterInfo is a struct that holds a rate limiter and the last time it was seen.
type limiterInfo struct {
	limiter *rate.Limiter
	// lastSeen is unix nanoseconds, written per request and read by the cleanup goroutine.
	lastSeen atomic.Int64
}

func newLimiterInfo(rps int, now time.Time) *limiterInfo {
	info := &limiterInfo{limiter: rate.NewLimiter(rate.Limit(rps), rps)}
	info.touch(now)
	return info
}

func (i *limiterInfo) touch(now time.Time) {
	i.lastSeen.Store(now.UnixNano())
}

func (i *limiterInfo) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, i.lastSeen.Load()))
}

// sweepIdle drops limiters not seen for longer than expiration.
func sweepIdle(limiters *sync.Map, expiration time.Duration, now time.Time) {
	limiters.Range(func(key, value interface{}) bool {
		if value.(*limiterInfo).idleSince(now) > expiration {
			limiters.Delete(key)
		}
		return true
	})
}

// RateLimitByIP applies rate limiting to requests per IP address. Idle
// limiters are dropped every cleanupInterval once unseen for expiration.
// A non-positive rps disables limiting.
func RateLimitByIP(rps int, cleanupInterval time.Duration, expiration time.Duration) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var limiters sync.Map

	// Cleanup goroutine
	go func() {
		for now := range time.Tick(cleanupInterval) {
			sweepIdle(&limiters, expiration, now)
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		// Use LoadOrStore to ensure thread safety
		actual, _ := limiters.LoadOrStore(ip, newLimiterInfo(rps, time.Now()))

		info := actual.(*limiterInfo)
		info.touch(time.Now())

		if !info.limiter.Allow() {
			rateLimitRejects.Inc()
			logger.FromGin(c).Warn("rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		c.Next()
	}
}
