package service

import (
	"github.com/deppfellow/products-api/internal/repository"
	"github.com/deppfellow/products-api/internal/server"
)

type Services struct {
	Product *ProductService
}

// NewServices wires services to their repositories. s is kept for
// services that need config or the New Relic application.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Product: NewProductService(repos.Product),
	}
}
