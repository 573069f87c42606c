package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eshop/internal/errors"
	"eshop/internal/model"
	"eshop/internal/service"
)

// ProductHandler bundles the public product CRUD endpoints. The payload's
// declared fields are trusted as-is; there is no per-product authorization.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a handler layer.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Get godoc
// @Summary Get product by id
// @Tags products
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{productId} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.svc.FindByID(c.Request().Context(), c.Param("productId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// List godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// Create godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce plain
// @Param product body model.Product true "Product payload"
// @Success 201 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Router /products/create [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var product model.Product
	if err := c.Bind(&product); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.Create(c.Request().Context(), &product); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusCreated, "Product created successfully")
}

// Update godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Produce plain
// @Param product body model.Product true "Product payload"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Router /products/update [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var product model.Product
	if err := c.Bind(&product); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.Update(c.Request().Context(), &product); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusOK, "Product updated successfully")
}

// Delete godoc
// @Summary Delete product
// @Tags products
// @Produce plain
// @Param productId path string true "Product ID"
// @Success 200 {string} string
// @Router /products/delete/{productId} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("productId")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusOK, "Product deleted successfully")
}
