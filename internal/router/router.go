// Package router wires the API's routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-ticket-booking/internal/config"
	"github.com/iliyamo/event-ticket-booking/internal/handler"
	"github.com/iliyamo/event-ticket-booking/internal/middleware"
)

// RegisterRoutes registers routes that carry no session or caching
// requirements.  Currently this is only the health check used by load
// balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers login, registration and logout.  None of these
// require an existing session; login is what creates one.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/login", a.Login)
	e.POST("/register", a.Register)
	e.GET("/logout", a.Logout)
}

// RegisterCatalog registers the public browse endpoints.  Both are served
// through the Redis response cache when one is configured.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.ResponseCache(cacheCfg, rdb)
	e.GET("/events", h.ListEvents, cached)
	e.GET("/event/:id/categories", h.ListCategories, cached)
}

// RegisterBooking registers the authenticated booking lifecycle.  Every
// route runs behind the session middleware, which answers the standard
// authentication-failed envelope before any handler code runs.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, sessionSecret string) {
	g := e.Group("", middleware.RequireSession(sessionSecret))
	g.POST("/book-ticket", h.Book)
	g.GET("/my-bookings", h.MyBookings)
	g.POST("/cancel-ticket/:ticketNo", h.Cancel)
}

// RegisterReports registers the reporting endpoints.  The revenue and
// top-customer reports are public and cacheable; the age report is personal
// and requires a session.
func RegisterReports(e *echo.Echo, h *handler.ReportHandler, sessionSecret string, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.ResponseCache(cacheCfg, rdb)
	e.GET("/reports/revenue", h.Revenue, cached)
	e.GET("/reports/top-customers", h.TopCustomers, cached)
	e.GET("/reports/customer-age", h.CustomerAge, middleware.RequireSession(sessionSecret))
}
