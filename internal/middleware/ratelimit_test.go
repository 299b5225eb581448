package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/config"
)

func TestRateKeyStrategies(t *testing.T) {
	t.Parallel()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/events")

	tests := []struct {
		strategy string
		want     string
	}{
		{strategy: "ip", want: "rl:ip:203.0.113.9"},
		{strategy: "route", want: "rl:route:GET /events"},
		{strategy: "ip_route", want: "rl:ip:203.0.113.9:route:GET /events"},
		{strategy: "unknown falls back", want: "rl:ip:203.0.113.9:route:GET /events"},
	}
	for _, test := range tests {
		cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: test.strategy}
		if got := rateKey(cfg, c); got != test.want {
			t.Errorf("strategy %q: got %q, want %q", test.strategy, got, test.want)
		}
	}
}

func TestRateLimitDisabledIsPassThrough(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.GET("/events", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RateLimit(config.RateLimitConfig{Enabled: true}, nil)) // nil client disables

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("pass-through failed: status %d body %q", rec.Code, rec.Body)
	}
}

func TestAsInt64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   interface{}
		want int64
	}{
		{int64(5), 5},
		{int(3), 3},
		{float64(7), 7},
		{"11", 11},
		{"nope", 0},
		{nil, 0},
	}
	for _, test := range tests {
		if got := asInt64(test.in); got != test.want {
			t.Errorf("asInt64(%v) = %d, want %d", test.in, got, test.want)
		}
	}
}
