package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/infrastructure/ratelimit"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

// RateLimit throttles requests per client IP using the given limit config.
// When the limiter backend is unavailable the request is allowed through;
// throttling is protection, not a dependency.
func RateLimit(limiter ratelimit.RateLimiter, scope string, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:ip:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"scope", scope,
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActorRateLimit throttles per authenticated actor rather than per IP. It
// must run after RequireAuth so the user id is on the context.
func ActorRateLimit(limiter ratelimit.RateLimiter, scope string, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ContextKeyUserID)
		if userID == 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:user:%d", scope, userID)

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"scope", scope,
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
