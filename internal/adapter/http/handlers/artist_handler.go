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

var errInvalidArtistPayload = pkg.NewDomainErrorSimple("INVALID_ARTIST_INPUT", "Invalid artist payload", http.StatusBadRequest)

// ArtistHandler serves the lineup publicly and lets admins edit it.
type ArtistHandler struct {
	usecase usecase.IArtistUseCase
}

func NewArtistHandler(uc usecase.IArtistUseCase) *ArtistHandler {
	return &ArtistHandler{usecase: uc}
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapArtistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromArtists(artists))
}

func (h *ArtistHandler) GetArtist(c *gin.Context) {
	artist, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapArtistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromArtist(artist))
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var payload request.ArtistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(errInvalidArtistPayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	artist, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapArtistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromArtist(artist))
}

func (h *ArtistHandler) ReplaceArtist(c *gin.Context) {
	var payload request.ArtistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(errInvalidArtistPayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	artist, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapArtistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromArtist(artist))
}

func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapArtistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapArtistError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidArtist):
		return pkg.NewDomainErrorSimple(errInvalidArtistPayload.Code, usecase.Detail(err, errInvalidArtistPayload.Message), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrArtistNotFound):
		return pkg.NewDomainErrorSimple("ARTIST_NOT_FOUND", "Artist not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
