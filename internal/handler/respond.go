// Package handler exposes the HTTP handlers of the ticket booking API.
// Every response is a JSON envelope carrying a boolean "success" and either
// a "message" or a domain-named payload; request-scoped failures never
// escape as transport errors.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// fail answers a request with the standard failure envelope.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "message": message})
}

// dbUnavailable is the uniform reply when the database could not be reached
// at startup or a handler has no live handle to work with.
func dbUnavailable(c echo.Context) error {
	return fail(c, http.StatusServiceUnavailable, "Database connection failed")
}
