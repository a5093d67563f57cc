package interfaces

import (
	"context"
	"fmt"

	"festival_backend/internal/domain/entities"
)

// IScrapingGateway returns a public profile's timeline in feed order.
type IScrapingGateway interface {
	FetchProfilePosts(ctx context.Context, username string) ([]entities.ProfilePost, error)
}

// UpstreamError reports a failed call to a third-party API. StatusCode is the
// upstream HTTP status when known, 0 otherwise.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Service, e.Message)
}
