package middleware

import (
	"strings"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// SingleSegment rejects requests whose path parameter spans more than one
// path segment. Echo lets a trailing ":param" capture the rest of the path,
// so "/items/1/extra" would otherwise reach the "/items/:id" handlers.
//
// It must be attached per route, after routing has set the parameter.
func SingleSegment(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.Contains(c.Param(param), "/") {
				return errs.RouteNotFound()
			}
			return next(c)
		}
	}
}
