package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/middleware"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
)

// ReportHandler serves the reporting endpoints.  Revenue and top-customer
// reports are public; the age report is personal and needs a session.
type ReportHandler struct {
	Reports   *repository.ReportRepo
	Customers *repository.CustomerRepo
}

func NewReportHandler(reports *repository.ReportRepo, customers *repository.CustomerRepo) *ReportHandler {
	return &ReportHandler{Reports: reports, Customers: customers}
}

// Revenue returns the top 20 events by booked-ticket revenue, zero-revenue
// events included.
func (h *ReportHandler) Revenue(c echo.Context) error {
	if h.Reports.DB == nil {
		return dbUnavailable(c)
	}
	rows := h.Reports.Revenue(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": rows})
}

// TopCustomers returns the top 15 customers by total spend with their rank.
func (h *ReportHandler) TopCustomers(c echo.Context) error {
	if h.Reports.DB == nil {
		return dbUnavailable(c)
	}
	rows := h.Reports.TopCustomers(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": rows})
}

// CustomerAge returns the caller's name, date of birth and the age computed
// by the database's CalculateAge function.  A missing customer row and a
// missing date of birth are distinct outcomes.
func (h *ReportHandler) CustomerAge(c echo.Context) error {
	p, ok := middleware.CurrentProfile(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Authentication failed. Please login.")
	}
	if h.Customers.DB == nil {
		return dbUnavailable(c)
	}
	rows := h.Customers.Age(c.Request().Context(), p.ID)
	if len(rows) == 0 {
		return fail(c, http.StatusNotFound, "Customer not found.")
	}
	if rows[0]["DOB"] == nil {
		return fail(c, http.StatusBadRequest, "Date of Birth not recorded for age calculation.")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": rows[0]})
}
