package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/repository"
)

// CatalogHandler serves the public browse endpoints: upcoming events and
// their seat categories.  No session is required.
type CatalogHandler struct {
	Events *repository.EventRepo
}

func NewCatalogHandler(events *repository.EventRepo) *CatalogHandler {
	return &CatalogHandler{Events: events}
}

// ListEvents returns upcoming events, optionally filtered by event type
// (equality, "All" means no filter) and venue city (substring).
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	if h.Events.DB == nil {
		return dbUnavailable(c)
	}
	eventType := c.QueryParam("type")
	city := strings.TrimSpace(c.QueryParam("city"))

	rows := h.Events.ListUpcoming(c.Request().Context(), eventType, city)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "events": rows})
}

// ListCategories returns the seat categories of one event with their
// computed final price.  An empty result is a not-found outcome.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return fail(c, http.StatusBadRequest, "Invalid event ID")
	}
	if h.Events.DB == nil {
		return dbUnavailable(c)
	}
	rows := h.Events.Categories(c.Request().Context(), id)
	if len(rows) == 0 {
		return fail(c, http.StatusNotFound, "No categories found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "categories": rows})
}
