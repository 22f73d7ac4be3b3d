package limiter

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const defaultTTL = 10 * time.Minute

// clients keeps one token bucket per client IP. Buckets idle for longer
// than ttl expire from the cache.
type clients struct {
	cache *cache.Cache
	rps   rate.Limit
	burst int
}

func newClients(rps int, burst int, ttl time.Duration) *clients {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &clients{
		cache: cache.New(ttl, 2*ttl),
		rps:   rate.Limit(rps),
		burst: burst,
	}
}

func (c *clients) get(ip string) *rate.Limiter {
	if item, ok := c.cache.Get(ip); ok {
		l := item.(*rate.Limiter)
		c.cache.SetDefault(ip, l)
		return l
	}

	l := rate.NewLimiter(c.rps, c.burst)
	if err := c.cache.Add(ip, l, cache.DefaultExpiration); err != nil {
		// another request of the same client stored its bucket first
		if item, ok := c.cache.Get(ip); ok {
			return item.(*rate.Limiter)
		}
	}

	return l
}

// Limit applies a token bucket of rps/burst per client IP.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	return limit(newClients(rps, burst, ttl))
}

func limit(c *clients) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !c.get(ctx.ClientIP()).Allow() {
			ctx.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		ctx.Next()
	}
}
