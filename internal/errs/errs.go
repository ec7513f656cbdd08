// Package errs defines the error types the API hands back to clients.
//
// Every failure a client can observe is an *HTTPError, rendered by the
// global error handler as {"error": "<message>"}.
package errs
