package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/session"
)

// profileKey is the context key under which the verified profile is stored.
const profileKey = "session_profile"

// RequireSession returns an Echo middleware that validates the session
// cookie and injects the customer's profile into the request context.
// Requests without a valid session are answered with the standard
// authentication-failed envelope before any database work happens.
func RequireSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "Authentication failed. Please login.",
				})
			}
			p, err := session.Verify(secret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "Authentication failed. Please login.",
				})
			}
			c.Set(profileKey, p)
			return next(c)
		}
	}
}

// CurrentProfile extracts the authenticated customer's profile from the
// context.  It reports false when no session middleware ran or validation
// never happened.
func CurrentProfile(c echo.Context) (session.Profile, bool) {
	p, ok := c.Get(profileKey).(session.Profile)
	return p, ok
}
