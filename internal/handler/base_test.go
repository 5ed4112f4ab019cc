package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type notePayload struct {
	Note string `json:"note"`
}

func (p *notePayload) Validate() error {
	if p.Note == "reject" {
		return errors.New("rejected")
	}
	return nil
}

func newTestHandler(t *testing.T) Handler {
	t.Helper()

	logger := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	return NewHandler(s)
}

func serve(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandleAllocatesPayloadPerRequest(t *testing.T) {
	h := newTestHandler(t)

	var seen []*notePayload
	e := echo.New()
	e.POST("/notes", Handle[notePayload](h, func(c echo.Context, req *notePayload) (map[string]string, error) {
		seen = append(seen, req)
		return map[string]string{"note": req.Note}, nil
	}, http.StatusCreated))

	rec := serve(e, `{"note":"first"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201; got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"note":"first"}` {
		t.Fatalf("unexpected body %s", got)
	}

	rec = serve(e, `{}`)
	if got := strings.TrimSpace(rec.Body.String()); got != `{"note":""}` {
		t.Fatalf("previous request leaked into the payload: %s", got)
	}

	if len(seen) != 2 || seen[0] == seen[1] {
		t.Fatalf("expected two distinct payloads; got %v", seen)
	}
}

func TestHandleStopsOnValidationError(t *testing.T) {
	h := newTestHandler(t)

	called := false
	e := echo.New()
	e.POST("/notes", Handle[notePayload](h, func(c echo.Context, req *notePayload) (string, error) {
		called = true
		return "", nil
	}, http.StatusOK))

	rec := serve(e, `{"note":"reject"}`)
	if called {
		t.Fatalf("handler must not run after a validation failure")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected the default error handler to answer 500; got %d", rec.Code)
	}
}

func TestHandleTextWritesPlainText(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	e.POST("/notes", HandleText[notePayload](h, func(c echo.Context, req *notePayload) (string, error) {
		return "note: " + req.Note, nil
	}, http.StatusOK))

	rec := serve(e, `{"note":"hi"}`)
	if rec.Body.String() != "note: hi" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextPlain) {
		t.Fatalf("expected text/plain; got %q", ct)
	}
}
