// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, request ids, CORS, rate limiting,
// tracing and panic recovery. The global error handler that
// turns every error into the client-facing JSON body lives here too.
package middleware
