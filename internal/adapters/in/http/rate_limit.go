package http

import (
	"net/http"
	"time"

	"labflow/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	loginPath = "/auth/login"

	// DefaultLoginRateLimitExpiry is how long an idle address keeps its bucket.
	DefaultLoginRateLimitExpiry = 10 * time.Minute
)

// LoginRateLimitConfig tunes the per-address login throttle.
type LoginRateLimitConfig struct {
	PerSecond float64
	Burst     int
	// ExpiresIn drops buckets of addresses idle for longer. Zero means
	// DefaultLoginRateLimitExpiry.
	ExpiresIn time.Duration
}

// LoginRateLimit throttles POST /auth/login per client address. The address is
// c.RealIP(), so it follows the echo instance's IPExtractor and cannot be chosen by
// the caller unless proxy headers are explicitly trusted.
func LoginRateLimit(cfg LoginRateLimitConfig, recorder *metrics.Recorder) echo.MiddlewareFunc {
	expiresIn := cfg.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = DefaultLoginRateLimitExpiry
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.PerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: expiresIn,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodPost || c.Path() != loginPath
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "client address could not be determined").SetInternal(err)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			recorder.RateLimited(c.Path())
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
		},
	})
}
