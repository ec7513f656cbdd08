package repository

import (
	"github.com/deppfellow/products-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Product *ProductRepository
}

// NewRepositories builds every repository on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Product: NewProductRepository(s.DB),
	}
}
