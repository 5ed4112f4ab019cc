package handler

import (
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// RootHandler answers GET /.
type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

func (h *RootHandler) Hello(c echo.Context, req *model.EmptyPayload) (string, error) {
	return "Hello World", nil
}
