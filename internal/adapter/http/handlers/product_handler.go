package handlers

import (
	"errors"
	"net/http"
	"strings"

	"festival_backend/internal/adapter/http/dto/request"
	"festival_backend/internal/adapter/http/dto/response"
	"festival_backend/internal/usecase"
	"festival_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// ProductHandler administers shop products. Writes are mirrored to the
// payment catalog by the use case.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(errInvalidProductPayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	product, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.UpdateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(errInvalidProductPayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	product, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// invalidPayload names the failing fields when binding failed validation.
func invalidPayload(base *pkg.AppError, err error) *pkg.AppError {
	fields := request.InvalidFields(err)
	if len(fields) == 0 {
		return base
	}
	return pkg.NewDomainErrorSimple(base.Code, base.Message+": "+strings.Join(fields, ", "), base.HTTPStatus)
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", usecase.Detail(err, "Invalid product payload"), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogSync):
		return pkg.NewDomainError("CATALOG_SYNC_FAILED", "Failed to sync product with the payment provider", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
