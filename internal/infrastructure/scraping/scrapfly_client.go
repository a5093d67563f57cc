// Package scraping fetches public Instagram profile timelines through the
// Scrapfly scraping API.
package scraping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	serviceName       = "scrapfly"
	instagramAPIURL   = "https://i.instagram.com/api/v1/users/web_profile_info/"
	instagramAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.127 Safari/537.36"
	maxErrorBodyBytes = 2048
)

var (
	ErrMissingScrapflyKey        = errors.New("scrapfly API key is not configured")
	ErrUnexpectedProfileResponse = errors.New("unexpected Instagram API response: user might be private, non-existent, or API changed")
)

type Client struct {
	apiKey     string
	baseURL    string
	appID      string
	httpClient *http.Client
	log        *zap.Logger
}

var _ interfaces.IScrapingGateway = (*Client)(nil)

func NewClient(cfg config.ScrapflyConfig, appID string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		appID:      appID,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("scrapfly"),
	}
}

type scrapeResponse struct {
	Result struct {
		Success    bool            `json:"success"`
		StatusCode int             `json:"status_code"`
		Status     string          `json:"status"`
		Content    string          `json:"content"`
		Error      json.RawMessage `json:"error"`
	} `json:"result"`
}

type profileInfo struct {
	Data struct {
		User *struct {
			Timeline *struct {
				Edges *[]timelineEdge `json:"edges"`
			} `json:"edge_owner_to_timeline_media"`
		} `json:"user"`
	} `json:"data"`
}

type timelineEdge struct {
	Node timelineNode `json:"node"`
}

type timelineNode struct {
	ID         string `json:"id"`
	Shortcode  string `json:"shortcode"`
	IsVideo    bool   `json:"is_video"`
	VideoURL   string `json:"video_url"`
	DisplayURL string `json:"display_url"`
	Caption    struct {
		Edges []struct {
			Node struct {
				Text string `json:"text"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"edge_media_to_caption"`
	TakenAt int64 `json:"taken_at_timestamp"`
	Likes   struct {
		Count int64 `json:"count"`
	} `json:"edge_media_preview_like"`
	Comments struct {
		Count int64 `json:"count"`
	} `json:"edge_media_to_comment"`
}

// FetchProfilePosts returns the posts of username in feed order.
func (c *Client) FetchProfilePosts(ctx context.Context, username string) ([]entities.ProfilePost, error) {
	if c.apiKey == "" {
		return nil, ErrMissingScrapflyKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scrapeURL(username), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var sr scrapeResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &interfaces.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: truncate(string(body))}
		}
		return nil, fmt.Errorf("failed to decode scrape response: %w", err)
	}
	c.log.Info("scrape finished", zap.String("username", username), zap.Int("status_code", sr.Result.StatusCode))

	if resp.StatusCode != http.StatusOK || !sr.Result.Success || sr.Result.StatusCode != http.StatusOK {
		status := sr.Result.StatusCode
		if status == 0 {
			status = resp.StatusCode
		}
		detail := "No error details by Scrapfly."
		if len(sr.Result.Error) > 0 && string(sr.Result.Error) != "null" {
			detail = truncate(string(sr.Result.Error))
		}
		return nil, &interfaces.UpstreamError{
			Service:    serviceName,
			StatusCode: status,
			Message:    fmt.Sprintf("Scrapfly request failed: %s - %s", sr.Result.Status, detail),
		}
	}

	var info profileInfo
	if err := json.Unmarshal([]byte(sr.Result.Content), &info); err != nil || !info.hasTimeline() {
		c.log.Warn("unexpected instagram response structure", zap.String("username", username), zap.String("content", truncate(sr.Result.Content)))
		return nil, ErrUnexpectedProfileResponse
	}

	edges := *info.Data.User.Timeline.Edges
	posts := make([]entities.ProfilePost, 0, len(edges))
	for _, e := range edges {
		posts = append(posts, e.Node.toProfilePost())
	}
	return posts, nil
}

// hasTimeline reports whether the edges list was present. An empty list is a
// valid feed; a missing or null one is not.
func (p profileInfo) hasTimeline() bool {
	return p.Data.User != nil && p.Data.User.Timeline != nil && p.Data.User.Timeline.Edges != nil
}

func (c *Client) scrapeURL(username string) string {
	target := instagramAPIURL + "?username=" + url.QueryEscape(username)
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("url", target)
	q.Set("asp", "true")
	q.Set("country", "US")
	q.Set("headers[x-ig-app-id]", c.appID)
	q.Set("headers[User-Agent]", instagramAgent)
	q.Set("headers[Accept-Language]", "en-US,en;q=0.9")
	q.Set("headers[Accept]", "*/*")
	return c.baseURL + "/scrape?" + q.Encode()
}

func (n timelineNode) toProfilePost() entities.ProfilePost {
	p := entities.ProfilePost{
		ID:            n.ID,
		Shortcode:     n.Shortcode,
		IsVideo:       n.IsVideo,
		DisplayURL:    n.DisplayURL,
		VideoURL:      n.VideoURL,
		LikesCount:    n.Likes.Count,
		CommentsCount: n.Comments.Count,
	}
	if len(n.Caption.Edges) > 0 {
		p.Caption = n.Caption.Edges[0].Node.Text
	}
	if n.TakenAt > 0 {
		p.TakenAt = time.Unix(n.TakenAt, 0).UTC()
	}
	return p
}

func truncate(s string) string {
	if len(s) > maxErrorBodyBytes {
		return s[:maxErrorBodyBytes]
	}
	return s
}
