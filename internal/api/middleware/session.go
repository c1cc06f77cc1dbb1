package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/candles/rsvp-system/internal/api/metrics"
	"github.com/candles/rsvp-system/internal/identity"
)

// Session ensures every inbound request carries a session: when the cookie
// is absent or fails verification, a fresh unauthenticated session is minted
// and persisted before the handler runs. This is the single place a session
// is attached; downstream code must not mint its own (double-cookie-write
// hazard).
func Session(sessions *identity.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s := sessions.Current(c.Request()); s == nil {
				fresh := sessions.Ensure(c.Request())
				if err := sessions.Persist(c.Response(), fresh); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue session")
				}
				metrics.SessionsIssuedTotal.Inc()
			}
			return next(c)
		}
	}
}
