// Package router builds the echo instance: it installs the middleware
// chain and maps every path to its handler.
package router

import (
	"github.com/deppfellow/products-api/internal/handler"
	"github.com/deppfellow/products-api/internal/middleware"
	"github.com/deppfellow/products-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the fully wired HTTP handler.
//
// Middleware order matters: the request id must exist before the
// context logger is built, and the New Relic transaction must be
// running before tracing attributes and trace ids are read.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)
	registerProductRoutes(router, h)

	return router
}
