package service

import (
	"context"
	"errors"

	"github.com/deppfellow/products-api/internal/errs"
	"github.com/deppfellow/products-api/internal/model"
	"github.com/rs/zerolog"
)

// ErrProductNotFound is returned when an update or delete matched no row.
var ErrProductNotFound = errs.NewNotFoundError("Product not found", nil)

// ErrEmptyInsert means INSERT ... RETURNING came back without a row.
var ErrEmptyInsert = errors.New("insert returned no row")

// ProductStore is the storage the service needs.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) ([]model.Product, error)
	Create(ctx context.Context, name, price *string) ([]model.Product, error)
	Update(ctx context.Context, id string, name, price *string) ([]model.Product, error)
	Delete(ctx context.Context, id string) ([]model.Product, error)
}

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

// List returns every product.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.store.List(ctx)
}

// Get returns the matching row set as is: one product, or none. A
// missing product is not an error here.
func (s *ProductService) Get(ctx context.Context, id string) ([]model.Product, error) {
	return s.store.GetByID(ctx, id)
}

// Create stores a product and returns the row as stored.
func (s *ProductService) Create(ctx context.Context, name, price *string) (*model.Product, error) {
	products, err := s.store.Create(ctx, name, price)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrEmptyInsert
	}

	zerolog.Ctx(ctx).Info().Int64("product_id", products[0].ID).Msg("product created")
	return &products[0], nil
}

// Update overwrites name and price. Fails with ErrProductNotFound when
// no row has the id.
func (s *ProductService) Update(ctx context.Context, id string, name, price *string) (*model.Product, error) {
	products, err := s.store.Update(ctx, id, name, price)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}

	zerolog.Ctx(ctx).Info().Int64("product_id", products[0].ID).Msg("product updated")
	return &products[0], nil
}

// Delete removes one product. Fails with ErrProductNotFound when no row
// has the id.
func (s *ProductService) Delete(ctx context.Context, id string) (*model.Product, error) {
	products, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}

	zerolog.Ctx(ctx).Info().Int64("product_id", products[0].ID).Msg("product deleted")
	return &products[0], nil
}
