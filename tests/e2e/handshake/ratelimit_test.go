//go:build e2e

package handshake_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"udhaarbook/internal/handler/middleware"
	"udhaarbook/internal/infra/ratelimit"
	"udhaarbook/tests/common/httptest"
	"udhaarbook/tests/e2e"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RateLimitE2ETestSuite struct {
	e2e.SharedSuite
}

func TestRateLimitE2ESuite(t *testing.T) {
	suite.Run(t, new(RateLimitE2ETestSuite))
}

// throttledRouter wires a small-ceiling limiter against the shared Redis
// container so the real counting path is exercised, independent of the
// high ceiling the application-level suites run with.
func (s *RateLimitE2ETestSuite) throttledRouter(limit int, window time.Duration) (*gin.Engine, func()) {
	client := redis.NewClient(&redis.Options{Addr: s.Config.Redis.Addr})
	limiter := ratelimit.NewRedisLimiter(client,
		"udhaarbook-e2e-throttle:"+uuid.NewString(), limit, window)

	router := gin.New()
	router.POST("/api/verify", middleware.VerifyRateLimit(limiter), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router, func() { _ = client.Close() }
}

func (s *RateLimitE2ETestSuite) TestFixedWindowCounting() {
	s.Run("attempts within the ceiling pass, the next is throttled", func() {
		router, closeClient := s.throttledRouter(5, time.Hour)
		defer closeClient()

		for attempt := 1; attempt <= 5; attempt++ {
			rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/api/verify", nil, "")
			s.Equal(http.StatusOK, rec.Code, "attempt %d must be within the ceiling", attempt)
		}

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/api/verify", nil, "")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusTooManyRequests, "Too many verification attempts")

		retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
		require.NoError(s.T(), err, "429 must carry a numeric Retry-After")
		s.Positive(retryAfter)
		s.LessOrEqual(retryAfter, 3600, "Retry-After cannot exceed the window")

		// Still throttled: rejected attempts keep counting against the window.
		rec = httptest.PerformRequest(s.T(), router, http.MethodPost, "/api/verify", nil, "")
		s.Equal(http.StatusTooManyRequests, rec.Code)
	})

	s.Run("expired window admits attempts again", func() {
		router, closeClient := s.throttledRouter(1, time.Second)
		defer closeClient()

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/api/verify", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(s.T(), router, http.MethodPost, "/api/verify", nil, "")
		s.Equal(http.StatusTooManyRequests, rec.Code)

		time.Sleep(1500 * time.Millisecond)

		rec = httptest.PerformRequest(s.T(), router, http.MethodPost, "/api/verify", nil, "")
		s.Equal(http.StatusOK, rec.Code, "a fresh window must reset the count")
	})
}
