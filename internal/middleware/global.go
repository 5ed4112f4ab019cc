package middleware

import (
	"net/http"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the global middleware and the global error
// handler so they can read config and the logger from *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by the server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger emits one "API" log line per request through the
// request-scoped logger, with severity based on the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// A returned error has not been written yet; the global error
			// handler decides the final status, so derive it the same way.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = resolveHTTPError(v.Error).Status
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into errors. The panic value and stack go to
// the request logger; the error continues up the chain and ends in the
// global error handler as a generic 500.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableErrorHandler: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			GetLogger(c).Error().
				Err(err).
				Bytes("stack", stack).
				Msg("recovered from panic")
			return err
		},
	})
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// resolveHTTPError maps any error to the HTTPError the client receives.
//
//   - *errs.HTTPError: unchanged.
//   - Echo 404 / 405: no route for this method+path, "Route not found.".
//   - other Echo 4xx: status kept, generic status text.
//   - anything else: 500 "Internal server error.".
func resolveHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch {
		case echoErr.Code == http.StatusNotFound, echoErr.Code == http.StatusMethodNotAllowed:
			return errs.RouteNotFound()
		case echoErr.Code >= 400 && echoErr.Code < 500:
			return &errs.HTTPError{
				Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
				Message: http.StatusText(echoErr.Code),
				Status:  echoErr.Code,
			}
		}
	}

	return errs.NewInternalServerError()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// The original error is logged (with stack for server faults); the client
// only ever receives {"error": "<message>"}.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := resolveHTTPError(err)

	logger := GetLogger(c)
	if GetRequestID(c) == "" {
		// Routing failures can short-circuit before EnhanceContext ran.
		logger = global.server.Logger
	}

	var e *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack().Err(err)
	} else {
		e = logger.Warn().Str("cause", err.Error())
		if len(httpErr.Errors) > 0 {
			e = e.Interface("field_errors", httpErr.Errors)
		}
	}

	e.
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.Status)
	} else {
		err = c.JSON(httpErr.Status, httpErr)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to write error response")
	}
}
