package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/handler"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
)

func TestListCategoriesRejectsBadEventID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		id   string
	}{
		{name: "not a number", id: "abc"},
		{name: "zero", id: "0"},
		{name: "negative", id: "-1"},
	}
	e := echo.New()
	h := handler.NewCatalogHandler(repository.NewEventRepo(nil))
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/event/:id/categories")
			c.SetParamNames("id")
			c.SetParamValues(test.id)

			if err := h.ListCategories(c); err != nil {
				t.Fatalf("ListCategories returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
			}
			env := decodeEnvelope(t, rec)
			if env.Success || env.Message != "Invalid event ID" {
				t.Errorf("unexpected envelope: %+v", env)
			}
		})
	}
}

func TestListEventsDatabaseUnavailable(t *testing.T) {
	t.Parallel()
	e := echo.New()
	h := handler.NewCatalogHandler(repository.NewEventRepo(nil))
	req := httptest.NewRequest(http.MethodGet, "/events?type=Concert&city=Mumbai", nil)
	rec := httptest.NewRecorder()
	if err := h.ListEvents(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ListEvents returned error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Message != "Database connection failed" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}
