package handler

import (
	"strconv"

	"github.com/deppfellow/products-api/internal/errs"
	"github.com/deppfellow/products-api/internal/model"
	"github.com/deppfellow/products-api/internal/server"
	"github.com/deppfellow/products-api/internal/service"
	"github.com/deppfellow/products-api/internal/validation"
	"github.com/labstack/echo/v4"
)

const productDeletedMessage = "Product deleted successfully"

// ListProductsRequest carries no input.
type ListProductsRequest struct{}

func (r *ListProductsRequest) Validate() error {
	return nil
}

// ProductIDRequest addresses one product by its raw path id.
type ProductIDRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (r *ProductIDRequest) Validate() error {
	return validation.Struct(r)
}

// CreateProductRequest is the POST body. Values are kept in text form and
// coerced by Postgres; omitted fields are stored as NULL.
type CreateProductRequest struct {
	Name  model.Input `json:"name"`
	Price model.Input `json:"price"`
}

func (r *CreateProductRequest) Validate() error {
	return nil
}

// UpdateProductRequest is the PUT body plus the path id. Both columns are
// overwritten, so an omitted field becomes NULL.
type UpdateProductRequest struct {
	ID    string      `param:"id" json:"-" validate:"required"`
	Name  model.Input `json:"name"`
	Price model.Input `json:"price"`
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Struct(r)
}

// MessageResponse is the body of a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

type ProductHandler struct {
	Handler
	productService *service.ProductService
}

func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		productService: productService,
	}
}

var invalidIDCode = "INVALID_PRODUCT_ID"

// resolveID returns the id to bind. By default the path text goes to
// storage untouched and Postgres decides whether it is an integer. With
// api.strict_ids it must parse as a positive integer first.
func (h *ProductHandler) resolveID(raw string) (string, error) {
	if !h.server.Config.API.StrictIDs {
		return raw, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return "", errs.NewBadRequestError("Invalid product id", &invalidIDCode, []errs.FieldError{
			{Field: "id", Error: "must be a positive integer"},
		})
	}
	return strconv.FormatInt(id, 10), nil
}

func (h *ProductHandler) ListProducts(c echo.Context, _ *ListProductsRequest) ([]model.Product, error) {
	return h.productService.List(c.Request().Context())
}

// GetProduct answers with an array of zero or one products; a missing id
// is an empty array, not a 404.
func (h *ProductHandler) GetProduct(c echo.Context, req *ProductIDRequest) ([]model.Product, error) {
	id, err := h.resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.productService.Get(c.Request().Context(), id)
}

func (h *ProductHandler) CreateProduct(c echo.Context, req *CreateProductRequest) (*model.Product, error) {
	return h.productService.Create(c.Request().Context(), req.Name.Text(), req.Price.Text())
}

func (h *ProductHandler) UpdateProduct(c echo.Context, req *UpdateProductRequest) (*model.Product, error) {
	id, err := h.resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.productService.Update(c.Request().Context(), id, req.Name.Text(), req.Price.Text())
}

func (h *ProductHandler) DeleteProduct(c echo.Context, req *ProductIDRequest) (*MessageResponse, error) {
	id, err := h.resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	if _, err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: productDeletedMessage}, nil
}
