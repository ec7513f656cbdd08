package router

import (
	"net/http"

	"github.com/deppfellow/products-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerProductRoutes(r *echo.Echo, h *handler.Handlers) {
	products := r.Group("/products")

	products.GET("", handler.Handle(h.Product.Handler, h.Product.ListProducts, http.StatusOK, &handler.ListProductsRequest{}))
	products.GET("/:id", handler.Handle(h.Product.Handler, h.Product.GetProduct, http.StatusOK, &handler.ProductIDRequest{}))
	products.POST("", handler.Handle(h.Product.Handler, h.Product.CreateProduct, http.StatusCreated, &handler.CreateProductRequest{}))
	products.PUT("/:id", handler.Handle(h.Product.Handler, h.Product.UpdateProduct, http.StatusOK, &handler.UpdateProductRequest{}))
	products.DELETE("/:id", handler.Handle(h.Product.Handler, h.Product.DeleteProduct, http.StatusOK, &handler.ProductIDRequest{}))
}
