package scraping

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileContent = `{"data":{"user":{"edge_owner_to_timeline_media":{"edges":[
 {"node":{"id":"1","shortcode":"AAA","is_video":false,"display_url":"https://cdn.example/a.jpg",
   "edge_media_to_caption":{"edges":[{"node":{"text":"Line-up out now"}}]},
   "taken_at_timestamp":1718000000,"edge_media_preview_like":{"count":120},"edge_media_to_comment":{"count":4}}},
 {"node":{"id":"2","shortcode":"BBB","is_video":true,"video_url":"https://cdn.example/b.mp4","display_url":"https://cdn.example/b.jpg",
   "edge_media_to_caption":{"edges":[]},"taken_at_timestamp":1718100000}}
]}}}}`

func scrapeBody(t *testing.T, success bool, status int, content string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{"result": map[string]any{
		"success": success, "status_code": status, "status": "DONE", "content": content,
	}})
	require.NoError(t, err)
	return b
}

func TestClient_FetchProfilePosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scrape", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "key-1", q.Get("key"))
		assert.Equal(t, "https://i.instagram.com/api/v1/users/web_profile_info/?username=band", q.Get("url"))
		assert.Equal(t, "true", q.Get("asp"))
		assert.Equal(t, "US", q.Get("country"))
		assert.Equal(t, "936619743392459", q.Get("headers[x-ig-app-id]"))
		_, _ = w.Write(scrapeBody(t, true, 200, profileContent))
	}))
	defer srv.Close()

	c := NewClient(config.ScrapflyConfig{APIKey: "key-1", BaseURL: srv.URL}, "936619743392459", nil)
	posts, err := c.FetchProfilePosts(context.Background(), "band")
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "AAA", posts[0].Shortcode)
	assert.Equal(t, "Line-up out now", posts[0].Caption)
	assert.Equal(t, int64(120), posts[0].LikesCount)
	assert.Equal(t, int64(4), posts[0].CommentsCount)
	assert.Equal(t, time.Unix(1718000000, 0).UTC(), posts[0].TakenAt)

	assert.True(t, posts[1].IsVideo)
	assert.Equal(t, "https://cdn.example/b.mp4", posts[1].VideoURL)
	assert.Empty(t, posts[1].Caption)
}

func TestClient_UpstreamFailureCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(scrapeBody(t, false, 404, ""))
	}))
	defer srv.Close()

	c := NewClient(config.ScrapflyConfig{APIKey: "k", BaseURL: srv.URL}, "app", nil)
	_, err := c.FetchProfilePosts(context.Background(), "ghost")

	var upstream *interfaces.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, 404, upstream.StatusCode)
	assert.Contains(t, upstream.Message, "Scrapfly request failed: DONE")
}

func TestClient_HTTPErrorWithoutJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	c := NewClient(config.ScrapflyConfig{APIKey: "k", BaseURL: srv.URL}, "app", nil)
	_, err := c.FetchProfilePosts(context.Background(), "band")

	var upstream *interfaces.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
}

func TestClient_UnexpectedStructure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(scrapeBody(t, true, 200, `{"data":{"user":null}}`))
	}))
	defer srv.Close()

	c := NewClient(config.ScrapflyConfig{APIKey: "k", BaseURL: srv.URL}, "app", nil)
	_, err := c.FetchProfilePosts(context.Background(), "private_band")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user might be private")

	var upstream *interfaces.UpstreamError
	assert.False(t, errors.As(err, &upstream))
}

func TestClient_MissingOrNullEdges(t *testing.T) {
	cases := map[string]string{
		"edges missing": `{"data":{"user":{"edge_owner_to_timeline_media":{"count":0}}}}`,
		"edges null":    `{"data":{"user":{"edge_owner_to_timeline_media":{"edges":null}}}}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(scrapeBody(t, true, 200, content))
			}))
			defer srv.Close()

			c := NewClient(config.ScrapflyConfig{APIKey: "k", BaseURL: srv.URL}, "app", nil)
			posts, err := c.FetchProfilePosts(context.Background(), "band")
			assert.ErrorIs(t, err, ErrUnexpectedProfileResponse)
			assert.Nil(t, posts)
		})
	}
}

func TestClient_EmptyFeedIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(scrapeBody(t, true, 200, `{"data":{"user":{"edge_owner_to_timeline_media":{"edges":[]}}}}`))
	}))
	defer srv.Close()

	c := NewClient(config.ScrapflyConfig{APIKey: "k", BaseURL: srv.URL}, "app", nil)
	posts, err := c.FetchProfilePosts(context.Background(), "quiet_band")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestClient_MissingKey(t *testing.T) {
	c := NewClient(config.ScrapflyConfig{}, "app", nil)
	_, err := c.FetchProfilePosts(context.Background(), "band")
	assert.ErrorIs(t, err, ErrMissingScrapflyKey)
}
