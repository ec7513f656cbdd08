// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request logging, CORS, rate limiting, tracing and panic
// recovery, and hold the error handler every failed request ends in.
package middleware
