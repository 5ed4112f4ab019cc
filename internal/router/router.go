// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo instance: global error handler, middleware chain
// and every route.
//
// Unregistered method/path combinations fall through to Echo's not found /
// method not allowed errors, which the global error handler turns into
// 404 {"error":"Route not found."}.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// "/items/" routes like "/items".
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerItemRoutes(router, h)

	return router
}
