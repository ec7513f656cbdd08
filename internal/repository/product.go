package repository

import (
	"context"

	"github.com/deppfellow/products-api/internal/database"
	"github.com/deppfellow/products-api/internal/model"
)

const (
	listProductsSQL  = `SELECT * FROM products`
	getProductSQL    = `SELECT * FROM products WHERE id = $1`
	createProductSQL = `INSERT INTO products (name, price) VALUES ($1, $2) RETURNING *`
	updateProductSQL = `UPDATE products SET name = $1, price = $2 WHERE id = $3 RETURNING *`
	deleteProductSQL = `DELETE FROM products WHERE id = $1 RETURNING *`
)

// ProductRepository runs the products statements.
//
// Ids, names and prices are all taken in text form and bound as text
// parameters, so Postgres does the coercion and rejects anything the
// column cannot hold.
type ProductRepository struct {
	db database.Querier
}

func NewProductRepository(db database.Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns every product in storage order.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	return database.Execute[model.Product](ctx, r.db, listProductsSQL)
}

// GetByID returns zero or one products.
func (r *ProductRepository) GetByID(ctx context.Context, id string) ([]model.Product, error) {
	return database.Execute[model.Product](ctx, r.db, getProductSQL, id)
}

// Create inserts a product and returns the stored row set.
func (r *ProductRepository) Create(ctx context.Context, name, price *string) ([]model.Product, error) {
	return database.Execute[model.Product](ctx, r.db, createProductSQL, name, price)
}

// Update overwrites both columns of one product. An empty result means
// no row had that id.
func (r *ProductRepository) Update(ctx context.Context, id string, name, price *string) ([]model.Product, error) {
	return database.Execute[model.Product](ctx, r.db, updateProductSQL, name, price, id)
}

// Delete removes one product and returns what was removed.
func (r *ProductRepository) Delete(ctx context.Context, id string) ([]model.Product, error) {
	return database.Execute[model.Product](ctx, r.db, deleteProductSQL, id)
}
