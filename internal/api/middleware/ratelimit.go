package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/choremarket/chore-api/internal/api/metrics"
	"github.com/choremarket/chore-api/internal/core/ports"
)

// RateLimit asks the admission controller whether the calling client may
// proceed, keyed by client IP. A failing controller fails open: admission
// control protects the service, it must not take it down.
func RateLimit(limiter ports.AdmissionController, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("admission check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RequestsThrottledTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
