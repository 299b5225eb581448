package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/middleware"
	"github.com/iliyamo/event-ticket-booking/internal/queue"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
)

// BookingHandler covers the authenticated booking lifecycle.  All methods
// run behind the session middleware; booking and cancellation publish a
// best-effort event to the ticket queue after the database commits.
type BookingHandler struct {
	Tickets *repository.TicketRepo
}

func NewBookingHandler(tickets *repository.TicketRepo) *BookingHandler {
	return &BookingHandler{Tickets: tickets}
}

type bookReq struct {
	EventID     int64  `json:"event_id"`
	Category    string `json:"category"`
	SeatNo      string `json:"seat_no"`
	PaymentMode string `json:"payment_mode"`
}

// Book forwards the booking to the atomic BookTicket stored procedure.
// Seat availability, pricing and the payment record are the procedure's
// business; any SIGNAL it raises is relayed with the driver prefix
// stripped.
func (h *BookingHandler) Book(c echo.Context) error {
	p, ok := middleware.CurrentProfile(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Authentication failed. Please login.")
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	req.SeatNo = strings.TrimSpace(req.SeatNo)

	if h.Tickets.DB == nil {
		return dbUnavailable(c)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Tickets.Book(ctx, p.ID, req.EventID, req.Category, req.SeatNo, req.PaymentMode); err != nil {
		return fail(c, http.StatusBadRequest,
			fmt.Sprintf("Booking failed: %s", repository.SignalText(err)))
	}

	// Best effort: a broker outage must not fail a committed booking.
	_ = queue.PublishTicketEvent(ctx, queue.TicketEvent{
		Action:       queue.ActionBooked,
		CustomerID:   p.ID,
		CustomerName: p.Name,
		EventID:      req.EventID,
		Category:     req.Category,
		SeatNo:       req.SeatNo,
		PaymentMode:  req.PaymentMode,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Ticket booked successfully! Seat: %s", req.SeatNo),
	})
}

// MyBookings lists the caller's tickets, newest booking first.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	p, ok := middleware.CurrentProfile(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Authentication failed. Please login.")
	}
	if h.Tickets.DB == nil {
		return dbUnavailable(c)
	}
	rows := h.Tickets.ListByCustomer(c.Request().Context(), p.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "bookings": rows})
}

// Cancel transitions one of the caller's tickets to Canceled.  The ownership
// and status guards run in the repository; the database's cancellation
// trigger reconciles seats and payment.
func (h *BookingHandler) Cancel(c echo.Context) error {
	p, ok := middleware.CurrentProfile(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Authentication failed. Please login.")
	}
	ticketNo, err := strconv.ParseInt(c.Param("ticketNo"), 10, 64)
	if err != nil || ticketNo <= 0 {
		return fail(c, http.StatusBadRequest, "Invalid ticket number")
	}
	if h.Tickets.DB == nil {
		return dbUnavailable(c)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Tickets.Cancel(ctx, ticketNo, p.ID); {
	case errors.Is(err, repository.ErrTicketNotFound):
		return fail(c, http.StatusNotFound, "Ticket not found.")
	case errors.Is(err, repository.ErrNotOwner):
		return fail(c, http.StatusForbidden, "Permission denied.")
	case errors.Is(err, repository.ErrAlreadyCanceled):
		return fail(c, http.StatusConflict, "Ticket is already canceled.")
	case err != nil:
		return fail(c, http.StatusInternalServerError,
			fmt.Sprintf("Cancellation failed: %s", repository.SignalText(err)))
	}

	_ = queue.PublishTicketEvent(ctx, queue.TicketEvent{
		Action:     queue.ActionCanceled,
		TicketNo:   ticketNo,
		CustomerID: p.ID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Ticket %d successfully canceled. Seats and payment updated.", ticketNo),
	})
}
