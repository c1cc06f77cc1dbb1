package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/candles/rsvp-system/internal/identity"
)

// Admin gates privileged routes on the session manager's admin predicate.
// The same 401 body covers both "not logged in" and "insufficient privilege"
// so the response does not reveal which case applies.
func Admin(sessions *identity.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessions.IsAdmin(c.Request()) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorised"})
			}
			return next(c)
		}
	}
}
