package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RateLimiter is satisfied by the Redis fixed-window limiter. Subject is the
// originating address: the attempt ceiling is shared across every code a
// client tries, which is what blunts brute force over the code space.
type RateLimiter interface {
	Allow(ctx context.Context, subject string) (allowed bool, retryAfterSeconds int, err error)
}

func VerifyRateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Fail open: a limiter outage must not take verification down
			// with it. The attempt is logged so the gap is visible.
			slog.Warn("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(), "error", err.Error())
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":       false,
				"error_message": "Too many verification attempts. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
