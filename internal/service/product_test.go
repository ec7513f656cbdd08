package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/products-api/internal/errs"
	"github.com/deppfellow/products-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	rows []model.Product
	err  error

	gotID    string
	gotName  *string
	gotPrice *string
}

func (s *stubStore) List(context.Context) ([]model.Product, error) { return s.rows, s.err }

func (s *stubStore) GetByID(_ context.Context, id string) ([]model.Product, error) {
	s.gotID = id
	return s.rows, s.err
}

func (s *stubStore) Create(_ context.Context, name, price *string) ([]model.Product, error) {
	s.gotName, s.gotPrice = name, price
	return s.rows, s.err
}

func (s *stubStore) Update(_ context.Context, id string, name, price *string) ([]model.Product, error) {
	s.gotID, s.gotName, s.gotPrice = id, name, price
	return s.rows, s.err
}

func (s *stubStore) Delete(_ context.Context, id string) ([]model.Product, error) {
	s.gotID = id
	return s.rows, s.err
}

func pen() model.Product {
	name := "Pen"
	p, _ := model.NewPrice("1.50")
	return model.Product{ID: 1, Name: &name, Price: p}
}

func TestGetReturnsRowSetAsIs(t *testing.T) {
	store := &stubStore{rows: []model.Product{}}
	svc := NewProductService(store)

	products, err := svc.Get(context.Background(), "42")
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, "42", store.gotID)
}

func TestCreate(t *testing.T) {
	store := &stubStore{rows: []model.Product{pen()}}
	svc := NewProductService(store)

	priceText := "1.50"
	created, err := svc.Create(context.Background(), pen().Name, &priceText)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Pen", *store.gotName)
	assert.Equal(t, "1.50", *store.gotPrice)
}

func TestCreateWithoutReturnedRow(t *testing.T) {
	svc := NewProductService(&stubStore{rows: []model.Product{}})

	_, err := svc.Create(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInsert)
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	svc := NewProductService(&stubStore{rows: []model.Product{}})

	_, err := svc.Update(context.Background(), "9", nil, nil)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Product not found", httpErr.Message)

	_, err = svc.Delete(context.Background(), "9")
	assert.Same(t, ErrProductNotFound, err)
}

func TestUpdateReturnsStoredRow(t *testing.T) {
	store := &stubStore{rows: []model.Product{pen()}}
	svc := NewProductService(store)

	updated, err := svc.Update(context.Background(), "1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "1", store.gotID)
	assert.Nil(t, store.gotName)
}

func TestStorageErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewProductService(&stubStore{err: boom})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = svc.Create(context.Background(), nil, nil)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Delete(context.Background(), "1")
	assert.ErrorIs(t, err, boom)
}
