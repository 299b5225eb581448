package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/config"
)

func newGetContext(e *echo.Echo, target, routePath string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(routePath)
	return c
}

func TestCacheKey(t *testing.T) {
	t.Parallel()
	e := echo.New()

	base := cacheKey("cache", newGetContext(e, "/events", "/events"))
	same := cacheKey("cache", newGetContext(e, "/events", "/events"))
	if base != same {
		t.Errorf("key not stable: %q vs %q", base, same)
	}

	withQuery := cacheKey("cache", newGetContext(e, "/events?type=Concert&city=Mumbai", "/events"))
	if withQuery == base {
		t.Error("query string should change the cache key")
	}

	otherPrefix := cacheKey("other", newGetContext(e, "/events", "/events"))
	if otherPrefix == base {
		t.Error("prefix should namespace the cache key")
	}
}

// Two events share the /event/:id/categories route pattern; their cache
// entries must not be shared or one event's categories would be replayed
// for another until the TTL expires.
func TestCacheKeyDistinguishesPathParams(t *testing.T) {
	t.Parallel()
	e := echo.New()
	const route = "/event/:id/categories"

	first := newGetContext(e, "/event/1/categories", route)
	first.SetParamNames("id")
	first.SetParamValues("1")
	second := newGetContext(e, "/event/2/categories", route)
	second.SetParamNames("id")
	second.SetParamValues("2")

	k1 := cacheKey("cache", first)
	k2 := cacheKey("cache", second)
	if k1 == k2 {
		t.Errorf("event 1 and event 2 share cache key %q", k1)
	}

	again := newGetContext(e, "/event/1/categories", route)
	again.SetParamNames("id")
	again.SetParamValues("1")
	if cacheKey("cache", again) != k1 {
		t.Error("same event should keep a stable cache key")
	}
}

func TestResponseCacheDisabledIsPassThrough(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  config.CacheConfig
	}{
		{name: "nil redis client", cfg: config.CacheConfig{Enabled: true, TTL: time.Minute}},
		{name: "cache disabled", cfg: config.CacheConfig{Enabled: false, TTL: time.Minute}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/events", func(c echo.Context) error {
				return c.JSON(http.StatusOK, echo.Map{"success": true})
			}, ResponseCache(test.cfg, nil))

			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
			}
			if rec.Header().Get("X-Cache") != "" {
				t.Error("disabled cache should not tag responses")
			}
		})
	}
}
