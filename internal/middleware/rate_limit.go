package middleware

import (
	"time"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware enforces Config.Server.RateLimit requests per second
// per client IP. A zero rate disables it.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the Echo rate limiter backed by an in-memory store, or a
// pass-through middleware when rate limiting is disabled.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.Server
	if cfg.RateLimit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = int(cfg.RateLimit) + 1
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewInternalServerError()
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path(), identifier)
			return errs.NewTooManyRequestsError(errs.MessageRateLimited)
		},
	})
}

// RecordRateLimitHit logs the rejected request and records a New Relic
// custom event when the agent runs.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint, identifier string) {
	r.server.Logger.Warn().
		Str("endpoint", endpoint).
		Str("ip", identifier).
		Msg("rate limit exceeded")

	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
