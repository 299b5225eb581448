package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/config"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
	"github.com/iliyamo/event-ticket-booking/internal/session"
)

// AuthHandler bundles dependencies for login, registration and logout.
// Identity is passwordless: a known email is the entire proof, and a hit
// establishes a signed session cookie.
type AuthHandler struct {
	Cfg       config.Config
	Customers *repository.CustomerRepo
}

func NewAuthHandler(cfg config.Config, customers *repository.CustomerRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: customers}
}

// ----- DTOs -----

type loginReq struct {
	Email string `json:"email"`
}

type registerReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	DOB     string `json:"dob"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
}

// Login looks up a customer by exact email match and, on a hit, issues the
// session cookie and returns the public profile.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	email := strings.TrimSpace(req.Email)

	if h.Customers.DB == nil {
		return dbUnavailable(c)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.GetByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return fail(c, http.StatusUnauthorized, "Email not found. Please register first.")
	}
	if err != nil {
		return dbUnavailable(c)
	}

	profile := session.Profile{ID: cust.ID, Name: cust.Name, Email: cust.Email}
	ttl := time.Duration(h.Cfg.SessionTTLMin) * time.Minute
	token, err := session.Issue(h.Cfg.SessionSecret, ttl, profile)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not establish session")
	}
	c.SetCookie(session.NewCookie(token, ttl))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Welcome back, %s!", cust.Name),
		"user":    profile,
	})
}

// Register inserts a new customer.  Name, email and phone are required here;
// uniqueness and format validation belong to the database's pre-insert
// trigger, whose SIGNAL text is surfaced verbatim on failure.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || phone == "" {
		return fail(c, http.StatusBadRequest, "Name, Email, and Phone are required")
	}

	if h.Customers.DB == nil {
		return dbUnavailable(c)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Customers.Register(ctx, name, email, phone,
		strings.TrimSpace(req.DOB), req.Gender, strings.TrimSpace(req.Address))
	if err != nil {
		return fail(c, http.StatusBadRequest, fmt.Sprintf("Registration failed: %s", err))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Registration successful! Please login.",
	})
}

// Logout clears the session cookie.  It always succeeds, session or not.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(session.ClearCookie())
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
