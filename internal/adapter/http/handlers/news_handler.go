package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"festival_backend/internal/adapter/http/dto/request"
	"festival_backend/internal/adapter/http/dto/response"
	"festival_backend/internal/adapter/http/middleware"
	"festival_backend/internal/usecase"
	"festival_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidNewsPayload = pkg.NewDomainErrorSimple("INVALID_NEWS_INPUT", "Invalid news article payload", http.StatusBadRequest)

// NewsHandler serves published news to everyone. Callers holding adminRole
// may pass ?drafts=true to also see drafts and scheduled posts.
type NewsHandler struct {
	usecase   usecase.INewsUseCase
	adminRole string
}

func NewNewsHandler(uc usecase.INewsUseCase, adminRole string) *NewsHandler {
	return &NewsHandler{usecase: uc, adminRole: adminRole}
}

func (h *NewsHandler) ListNews(c *gin.Context) {
	articles, err := h.usecase.List(c.Request.Context(), h.includeHidden(c))
	if err != nil {
		appErr := mapNewsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNewsArticles(articles))
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	article, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), h.includeHidden(c))
	if err != nil {
		appErr := mapNewsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNewsArticle(article))
}

func (h *NewsHandler) CreateNews(c *gin.Context) {
	var payload request.NewsArticleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(errInvalidNewsPayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	article, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapNewsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromNewsArticle(article))
}

func (h *NewsHandler) ReplaceNews(c *gin.Context) {
	var payload request.NewsArticleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(errInvalidNewsPayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	article, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapNewsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNewsArticle(article))
}

func (h *NewsHandler) DeleteNews(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapNewsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NewsHandler) includeHidden(c *gin.Context) bool {
	drafts, _ := strconv.ParseBool(c.Query("drafts"))
	if !drafts {
		return false
	}
	claims := middleware.Claims(c)
	return claims != nil && h.adminRole != "" && claims.Role == h.adminRole
}

func mapNewsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNewsArticle):
		return pkg.NewDomainErrorSimple(errInvalidNewsPayload.Code, usecase.Detail(err, errInvalidNewsPayload.Message), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNewsArticleNotFound):
		return pkg.NewDomainErrorSimple("NEWS_NOT_FOUND", "News article not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
