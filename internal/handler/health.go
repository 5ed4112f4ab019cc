package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a "system" endpoint that uptime monitors and load
// balancers can use to verify the service is alive.
type HealthHandler struct {
	Handler
	itemService *service.ItemService
}

func NewHealthHandler(s *server.Server, itemService *service.ItemService) *HealthHandler {
	return &HealthHandler{
		Handler:     NewHandler(s),
		itemService: itemService,
	}
}

// CheckHealth reports overall status, timestamp, environment and the item
// store check. The store is in-process, so it is healthy whenever the
// process can answer.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	storeStart := time.Now()
	items := h.itemService.CountItems(c.Request().Context())

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"store": map[string]interface{}{
				"status":        "healthy",
				"items":         items,
				"response_time": time.Since(storeStart).String(),
			},
		},
	}

	logger.Debug().
		Int("items", items).
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":    "response",
				"operation":     "health_check",
				"error_type":    "json_response_error",
				"error_message": err.Error(),
			})
		}

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
