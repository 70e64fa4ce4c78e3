package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/platform/ratelimit"
)

const msgThrottled = "Request was throttled."

// RateLimit keys the limiter by client IP. Limiter failures let the request
// through so a redis outage does not take the catalog down.
func RateLimit(limiter ratelimit.Limiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			if log != nil {
				log.Warn("rate limiter unavailable", "error", err)
			}
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": msgThrottled})
			return
		}
		c.Next()
	}
}
