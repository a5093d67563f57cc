package handlers

import (
	"errors"
	"net/http"

	"festival_backend/internal/adapter/http/dto/request"
	"festival_backend/internal/adapter/http/dto/response"
	"festival_backend/internal/adapter/http/middleware"
	"festival_backend/internal/usecase"
	"festival_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler serves the storefront cart endpoints and order administration.
type OrderHandler struct {
	orders   usecase.IOrderUseCase
	checkout usecase.ICheckoutUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, checkout usecase.ICheckoutUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, checkout: checkout}
}

// CreateOrder prices the cart and stores a pending order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), middleware.UserID(c), payload.ToItemInputs())
	if err != nil {
		writeStorefrontError(c, err, "Failed to create order")
		return
	}
	c.JSON(http.StatusOK, response.FromCreatedOrder(order))
}

// CreateCheckoutSession opens a hosted checkout for the cart.
func (h *OrderHandler) CreateCheckoutSession(c *gin.Context) {
	var payload request.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.checkout.CreateSession(c.Request.Context(), payload.ToCheckoutInput(middleware.UserID(c)))
	if err != nil {
		writeStorefrontError(c, err, "Failed to create checkout session")
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// writeStorefrontError keeps the {error, details} body the storefront client
// already parses. Server errors carry the cause in details.
func writeStorefrontError(c *gin.Context, err error, fallback string) {
	appErr := mapOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		c.JSON(appErr.HTTPStatus, response.ErrorResponse{Error: fallback, Details: usecase.Detail(err, err.Error())})
		return
	}
	c.JSON(appErr.HTTPStatus, response.ErrorResponse{Error: appErr.Message})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderItems):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ITEMS", usecase.Detail(err, "Invalid order items"), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", usecase.Detail(err, "Insufficient stock"), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCatalogPrice):
		return pkg.NewDomainErrorSimple("MISSING_CATALOG_PRICE", usecase.Detail(err, "Product has no price configured"), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", usecase.Detail(err, "Invalid order status"), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", usecase.Detail(err, "Product not found"), http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", usecase.Detail(err, "Order not found"), http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutUnavailable):
		return pkg.NewDomainErrorSimple("CHECKOUT_UNAVAILABLE", "Checkout provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
