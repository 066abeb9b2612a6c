package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"recurring-task-management/pkg/response"
)

// syncThrottle is a per-user rate limiter with auto-cleanup of idle entries.
type syncThrottle struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newSyncThrottle(requestsPerMin int) *syncThrottle {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &syncThrottle{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (st *syncThrottle) allow(key string) bool {
	limiter, ok := st.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(st.rate, st.burst)
		st.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// SyncThrottle bounds reconciliation-bearing requests per user. Runs after
// Auth; unauthenticated requests fall back to the client IP as the key.
func (m Middleware) SyncThrottle() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := UserID(c)
		if key == "" {
			key = c.ClientIP()
		}

		if !m.throttle.allow(key) {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
