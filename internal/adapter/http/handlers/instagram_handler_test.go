package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"festival_backend/internal/adapter/http/handlers/mocks"
	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase"
	"festival_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInstagramRouter(uc usecase.IInstagramSyncUseCase, userID string) *gin.Engine {
	h := NewInstagramHandler(uc)
	r := gin.New()
	if userID != "" {
		r.Use(asUser(userID))
	}
	r.POST("/fetch-instagram-posts", h.FetchPosts)
	r.GET("/v1/instagram-posts", h.ListPosts)
	return r
}

func TestInstagramHandler_FetchPosts(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		body       string
		setup      func(uc *mocks.MockIInstagramSyncUseCase)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "anonymous",
			body:       `{"userId":"u-1"}`,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Unauthorized. You must be logged in.",
		},
		{
			name:       "missing user id",
			userID:     "u-1",
			body:       `{"instagramUsername":"festival"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "User ID not provided in request body.",
		},
		{
			name:       "user mismatch",
			userID:     "u-1",
			body:       `{"userId":"u-2"}`,
			wantStatus: http.StatusForbidden,
			wantMsg:    "Forbidden. User ID mismatch.",
		},
		{
			name:   "missing username",
			userID: "u-1",
			body:   `{"userId":"u-1"}`,
			setup: func(uc *mocks.MockIInstagramSyncUseCase) {
				uc.EXPECT().Sync(gomock.Any(), "u-1", "").Return(entities.SyncReport{}, usecase.ErrMissingInstagramUsername)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Instagram username not provided or configured.",
		},
		{
			name:   "rate limited",
			userID: "u-1",
			body:   `{"userId":"u-1","instagramUsername":"festival"}`,
			setup: func(uc *mocks.MockIInstagramSyncUseCase) {
				err := &usecase.DetailedError{Err: usecase.ErrFetchRateLimited, Detail: "Fetch limit reached for festival today."}
				uc.EXPECT().Sync(gomock.Any(), "u-1", "festival").Return(entities.SyncReport{}, err)
			},
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "Fetch limit reached for festival today.",
		},
		{
			name:   "upstream status is propagated",
			userID: "u-1",
			body:   `{"userId":"u-1","instagramUsername":"festival"}`,
			setup: func(uc *mocks.MockIInstagramSyncUseCase) {
				upstream := &interfaces.UpstreamError{Service: "scrapfly", StatusCode: http.StatusBadGateway, Message: "bad gateway"}
				err := &usecase.DetailedError{Err: fmt.Errorf("%w: %w", usecase.ErrFetchFailed, upstream), Detail: "Error fetching posts: " + upstream.Error()}
				uc.EXPECT().Sync(gomock.Any(), "u-1", "festival").Return(entities.SyncReport{}, err)
			},
			wantStatus: http.StatusBadGateway,
			wantMsg:    "Error fetching posts: scrapfly error (status 502): bad gateway",
		},
		{
			name:   "fetch failure without status",
			userID: "u-1",
			body:   `{"userId":"u-1"}`,
			setup: func(uc *mocks.MockIInstagramSyncUseCase) {
				uc.EXPECT().Sync(gomock.Any(), "u-1", "").Return(entities.SyncReport{}, fmt.Errorf("%w: timeout", usecase.ErrFetchFailed))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Error fetching posts.",
		},
		{
			name:   "success",
			userID: "u-1",
			body:   `{"userId":"u-1","instagramUsername":" festival "}`,
			setup: func(uc *mocks.MockIInstagramSyncUseCase) {
				uc.EXPECT().Sync(gomock.Any(), "u-1", "festival").Return(entities.SyncReport{Message: "Fetched for festival."}, nil)
			},
			wantStatus: http.StatusOK,
			wantMsg:    "Fetched for festival.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIInstagramSyncUseCase(ctrl)
			if tt.setup != nil {
				tt.setup(uc)
			}

			w := doJSON(newInstagramRouter(uc, tt.userID), http.MethodPost, "/fetch-instagram-posts", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if got := decodeBody(t, w)["message"]; got != tt.wantMsg {
				t.Fatalf("expected message %q, got %v", tt.wantMsg, got)
			}
		})
	}
}

func TestInstagramHandler_ListPosts(t *testing.T) {
	t.Run("filters by username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInstagramSyncUseCase(ctrl)
		uc.EXPECT().ListPosts(gomock.Any(), "festival").Return([]entities.ImportedPost{
			{InstagramPostID: "1", Shortcode: "A"},
			{InstagramPostID: "2", Shortcode: "B"},
		}, nil)

		w := doJSON(newInstagramRouter(uc, ""), http.MethodGet, "/v1/instagram-posts?username=festival", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"shortcode":"B"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInstagramSyncUseCase(ctrl)
		uc.EXPECT().ListPosts(gomock.Any(), "").Return(nil, errors.New("ddb down"))

		w := doJSON(newInstagramRouter(uc, ""), http.MethodGet, "/v1/instagram-posts", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected code %q", code)
		}
	})
}
