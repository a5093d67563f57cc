package handlers

import (
	"errors"
	"net/http"

	"festival_backend/internal/adapter/http/dto/request"
	"festival_backend/internal/adapter/http/dto/response"
	"festival_backend/internal/usecase"
	"festival_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFAQPayload = pkg.NewDomainErrorSimple("INVALID_FAQ_INPUT", "Invalid FAQ item payload", http.StatusBadRequest)

type FAQHandler struct {
	usecase usecase.IFAQUseCase
}

func NewFAQHandler(uc usecase.IFAQUseCase) *FAQHandler {
	return &FAQHandler{usecase: uc}
}

func (h *FAQHandler) ListFAQ(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapFAQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFAQItems(items))
}

func (h *FAQHandler) GetFAQItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFAQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFAQItem(item))
}

func (h *FAQHandler) CreateFAQItem(c *gin.Context) {
	var payload request.FAQItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(errInvalidFAQPayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapFAQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFAQItem(item))
}

func (h *FAQHandler) ReplaceFAQItem(c *gin.Context) {
	var payload request.FAQItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(errInvalidFAQPayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapFAQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFAQItem(item))
}

func (h *FAQHandler) DeleteFAQItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapFAQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapFAQError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFAQItem):
		return pkg.NewDomainErrorSimple(errInvalidFAQPayload.Code, usecase.Detail(err, errInvalidFAQPayload.Message), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFAQItemNotFound):
		return pkg.NewDomainErrorSimple("FAQ_ITEM_NOT_FOUND", "FAQ item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
