package handler

import (
	"github.com/deppfellow/products-api/internal/server"
	"github.com/deppfellow/products-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup takes one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Product *ProductHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s, s.DB),
		OpenAPI: NewOpenAPIHandler(s),
		Product: NewProductHandler(s, services.Product),
	}
}
