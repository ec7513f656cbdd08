package repository

import (
	"context"
	"testing"

	"github.com/deppfellow/products-api/internal/database"
	"github.com/deppfellow/products-api/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "name", "price"}

func newRepo(t *testing.T) (*ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return NewProductRepository(mock), mock
}

func strPtr(s string) *string { return &s }

func price(t *testing.T, s string) *model.Price {
	t.Helper()
	p, err := model.NewPrice(s)
	require.NoError(t, err)
	return p
}

func TestList(t *testing.T) {
	repo, mock := newRepo(t)
	pen := price(t, "1.50")

	mock.ExpectQuery("SELECT * FROM products").
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(int64(1), strPtr("Pen"), pen).
			AddRow(int64(2), (*string)(nil), (*model.Price)(nil)))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Pen", *products[0].Name)
	assert.Equal(t, "1.5", products[0].Price.String())
	assert.Nil(t, products[1].Name)
	assert.Nil(t, products[1].Price)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT * FROM products WHERE id = $1").
		WithArgs("7").
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(int64(7), strPtr("Cup"), price(t, "4.00")))

	products, err := repo.GetByID(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(7), products[0].ID)
}

func TestGetByIDMissing(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT * FROM products WHERE id = $1").
		WithArgs("999").
		WillReturnRows(pgxmock.NewRows(productColumns))

	products, err := repo.GetByID(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	name, text := strPtr("Pen"), strPtr("1.50")

	mock.ExpectQuery("INSERT INTO products (name, price) VALUES ($1, $2) RETURNING *").
		WithArgs(name, text).
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(int64(3), name, price(t, "1.50")))

	products, err := repo.Create(context.Background(), name, text)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(3), products[0].ID)
}

func TestCreateBindsNullForMissingFields(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO products (name, price) VALUES ($1, $2) RETURNING *").
		WithArgs((*string)(nil), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(int64(4), (*string)(nil), (*model.Price)(nil)))

	products, err := repo.Create(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].Name)
}

func TestUpdateBindsIDLast(t *testing.T) {
	repo, mock := newRepo(t)
	name, text := strPtr("Mug"), strPtr("6.25")

	mock.ExpectQuery("UPDATE products SET name = $1, price = $2 WHERE id = $3 RETURNING *").
		WithArgs(name, text, "5").
		WillReturnRows(pgxmock.NewRows(productColumns))

	products, err := repo.Update(context.Background(), "5", name, text)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("DELETE FROM products WHERE id = $1 RETURNING *").
		WithArgs("5").
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(int64(5), strPtr("Mug"), price(t, "6.25")))

	products, err := repo.Delete(context.Background(), "5")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestHostileInputStaysAParameter(t *testing.T) {
	repo, mock := newRepo(t)
	hostile := "1; DROP TABLE products; --"
	name := strPtr("'); DELETE FROM products; --")

	mock.ExpectQuery("SELECT * FROM products WHERE id = $1").
		WithArgs(hostile).
		WillReturnError(&pgconn.PgError{Severity: "ERROR", Code: "22P02"})
	mock.ExpectQuery("INSERT INTO products (name, price) VALUES ($1, $2) RETURNING *").
		WithArgs(name, (*string)(nil)).
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(int64(1), name, (*model.Price)(nil)))

	_, err := repo.GetByID(context.Background(), hostile)
	var storageErr *database.StorageError
	require.ErrorAs(t, err, &storageErr)

	products, err := repo.Create(context.Background(), name, nil)
	require.NoError(t, err)
	assert.Equal(t, *name, *products[0].Name)
}
