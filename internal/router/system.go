package router

import (
	"net/http"

	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/model"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the items
// resource: the greeting and the health status.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.HandleText[model.EmptyPayload](h.Root.Handler, h.Root.Hello, http.StatusOK))

	// Health status endpoint (used by monitors and load balancers).
	r.GET("/status", h.Health.CheckHealth)
}
