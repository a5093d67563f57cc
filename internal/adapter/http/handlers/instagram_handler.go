package handlers

import (
	"errors"
	"net/http"
	"strings"

	"festival_backend/internal/adapter/http/dto/request"
	"festival_backend/internal/adapter/http/dto/response"
	"festival_backend/internal/adapter/http/middleware"
	"festival_backend/internal/usecase"
	"festival_backend/internal/usecase/interfaces"
	"festival_backend/pkg"

	"github.com/gin-gonic/gin"
)

// The fetch endpoint answers with {message} bodies the CMS admin panel shows as-is.
var (
	errFetchUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized. You must be logged in.", http.StatusUnauthorized)
	errFetchBadBody      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body.", http.StatusBadRequest)
	errFetchNoUserID     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "User ID not provided in request body.", http.StatusBadRequest)
	errFetchUserMismatch = pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden. User ID mismatch.", http.StatusForbidden)
)

// InstagramHandler triggers profile syncs and lists the mirrored posts.
type InstagramHandler struct {
	usecase usecase.IInstagramSyncUseCase
}

func NewInstagramHandler(uc usecase.IInstagramSyncUseCase) *InstagramHandler {
	return &InstagramHandler{usecase: uc}
}

// FetchPosts runs one sync for the logged-in user. The body's userId must
// match the token's user.
func (h *InstagramHandler) FetchPosts(c *gin.Context) {
	authUserID := middleware.UserID(c)
	if authUserID == "" {
		writeMessage(c, errFetchUnauthorized)
		return
	}

	var payload request.FetchInstagramPostsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeMessage(c, errFetchBadBody)
		return
	}

	userID := payload.ResolveUserID()
	if userID == "" {
		writeMessage(c, errFetchNoUserID)
		return
	}
	if userID != authUserID {
		writeMessage(c, errFetchUserMismatch)
		return
	}

	report, err := h.usecase.Sync(c.Request.Context(), userID, payload.ResolveUsername())
	if err != nil {
		writeMessage(c, mapFetchError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: report.Message})
}

// ListPosts returns imported posts, newest first. ?username= filters by owner.
func (h *InstagramHandler) ListPosts(c *gin.Context) {
	posts, err := h.usecase.ListPosts(c.Request.Context(), strings.TrimSpace(c.Query("username")))
	if err != nil {
		appErr := mapFetchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromImportedPosts(posts))
}

func writeMessage(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, response.MessageResponse{Message: appErr.Message})
}

func mapFetchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFetchUserID):
		return errFetchNoUserID
	case errors.Is(err, usecase.ErrMissingInstagramUsername):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Instagram username not provided or configured.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFetchRateLimited), errors.Is(err, usecase.ErrFetchInProgress):
		return pkg.NewDomainErrorSimple("RATE_LIMITED", usecase.Detail(err, "Fetch limit reached for today."), http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrFetchFailed):
		status := http.StatusInternalServerError
		var upstream *interfaces.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode >= http.StatusBadRequest {
			status = upstream.StatusCode
		}
		return pkg.NewDomainError("FETCH_FAILED", usecase.Detail(err, "Error fetching posts."), err, status)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
