package handlers

import (
	"errors"
	"net/http"

	"festival_backend/internal/usecase"
	"festival_backend/pkg"

	"github.com/gin-gonic/gin"
)

const mediaCacheControl = "public, max-age=86400"

// MediaHandler streams imported media files from object storage.
type MediaHandler struct {
	usecase usecase.IMediaUseCase
}

func NewMediaHandler(uc usecase.IMediaUseCase) *MediaHandler {
	return &MediaHandler{usecase: uc}
}

func (h *MediaHandler) ServeFile(c *gin.Context) {
	obj, err := h.usecase.Open(c.Request.Context(), c.Param("filename"))
	if err != nil {
		appErr := mapMediaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, obj.Size, contentType, obj.Body, map[string]string{
		"Cache-Control": mediaCacheControl,
	})
}

func mapMediaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMediaNotFound):
		return pkg.NewDomainErrorSimple("MEDIA_NOT_FOUND", "Media not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
