package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	logger := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	return s
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("expected a generated request id")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("expected response header %q; got %q", seen, got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("expected incoming request id to be reused; got %q", seen)
	}
}

func TestResolveHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"http error passthrough", fmt.Errorf("wrapped: %w", errs.ItemNotFound()), http.StatusNotFound, errs.MessageItemNotFound},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, errs.MessageRouteNotFound},
		{"echo method not allowed", echo.ErrMethodNotAllowed, http.StatusNotFound, errs.MessageRouteNotFound},
		{"echo other client error", echo.ErrConflict, http.StatusConflict, http.StatusText(http.StatusConflict)},
		{"echo server error", echo.ErrInternalServerError, http.StatusInternalServerError, errs.MessageInternalServer},
		{"plain error", errors.New("secret detail"), http.StatusInternalServerError, errs.MessageInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveHTTPError(tt.err)
			if got.Status != tt.wantStatus || got.Message != tt.wantMsg {
				t.Fatalf("want %d %q; got %d %q", tt.wantStatus, tt.wantMsg, got.Status, got.Message)
			}
		})
	}
}

func TestGlobalErrorHandler_HidesInternalDetail(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/items", nil), rec)

	global.GlobalErrorHandler(errors.New("secret detail"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500; got %d", rec.Code)
	}
	if got, want := rec.Body.String(), "{\"error\":\"Internal server error.\"}\n"; got != want {
		t.Fatalf("expected body %q; got %q", want, got)
	}
}

func TestGlobalErrorHandler_SkipsCommittedResponses(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := c.String(http.StatusOK, "partial"); err != nil {
		t.Fatalf("String: %v", err)
	}

	global.GlobalErrorHandler(errs.ItemNotFound(), c)

	if rec.Code != http.StatusOK || rec.Body.String() != "partial" {
		t.Fatalf("expected committed response to be left alone; got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	s := newTestServer(t)
	limiter := NewRateLimitMiddleware(s)

	called := false
	h := limiter.Limit()(func(c echo.Context) error {
		called = true
		return nil
	})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if err := h(c); err != nil || !called {
		t.Fatalf("expected pass-through; err=%v called=%v", err, called)
	}
}

func TestRateLimit_DeniesOverBurst(t *testing.T) {
	s := newTestServer(t)
	s.Config.Server.RateLimit = 1
	s.Config.Server.RateLimitBurst = 1

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass; got %d", first.Code)
	}

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429; got %d", second.Code)
	}
	if got, want := second.Body.String(), "{\"error\":\"Rate limit exceeded.\"}\n"; got != want {
		t.Fatalf("expected body %q; got %q", want, got)
	}
}

func TestSingleSegment(t *testing.T) {
	tests := []struct {
		param    string
		rejected bool
	}{
		{param: "1"},
		{param: "abc"},
		{param: "1/extra", rejected: true},
		{param: "1/extra/more", rejected: true},
	}

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/things/"+tt.param, nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			err := SingleSegment("id")(next)(c)
			if !tt.rejected {
				if err != nil {
					t.Fatalf("expected pass-through; got %v", err)
				}
				return
			}

			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *errs.HTTPError; got %v", err)
			}
			if httpErr.Status != http.StatusNotFound || httpErr.Message != errs.MessageRouteNotFound {
				t.Fatalf("unexpected error: %d %q", httpErr.Status, httpErr.Message)
			}
		})
	}
}
