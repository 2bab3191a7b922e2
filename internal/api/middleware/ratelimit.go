package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pulseboard/dashboard-api/internal/api/metrics"
	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// Rate-limit bucket names. Buckets are independent: a client limited on the
// auth bucket is unaffected on general traffic and vice versa.
const (
	BucketGeneral = "general"
	BucketAuth    = "auth"
)

// RateLimit applies the given bucket's limiter keyed by client IP. Denials
// surface as domain.ErrRateLimited (429 at the error handler) so callers
// can emit the correct retry signal. Limiter backend errors fail open: a
// broken limiter must not take down the read path.
func RateLimit(l ports.RateLimiter, bucket string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("bucket", bucket).Msg("rate limiter unavailable, failing open")
				return next(c)
			}
			if !ok {
				metrics.RateLimitDeniedTotal.WithLabelValues(bucket).Inc()
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}
