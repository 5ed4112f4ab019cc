package router

import (
	"net/http"

	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/model"
	"github.com/labstack/echo/v4"
)

func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	items := r.Group("/items")

	items.GET("", handler.Handle[model.EmptyPayload](h.Item.Handler, h.Item.ListItems, http.StatusOK))
	items.POST("", handler.Handle[model.CreateItemPayload](h.Item.Handler, h.Item.CreateItem, http.StatusCreated))

	// ":id" is exactly one segment; deeper paths are unknown routes.
	oneSegment := middleware.SingleSegment("id")

	items.GET("/:id", handler.Handle[model.ItemIDPayload](h.Item.Handler, h.Item.GetItem, http.StatusOK), oneSegment)
	items.PUT("/:id", handler.Handle[model.UpdateItemPayload](h.Item.Handler, h.Item.UpdateItem, http.StatusOK), oneSegment)
	items.DELETE("/:id", handler.Handle[model.ItemIDPayload](h.Item.Handler, h.Item.DeleteItem, http.StatusOK), oneSegment)
}
