package response

import (
	"time"

	"festival_backend/internal/domain/entities"
)

// MessageResponse is the body used by the Instagram fetch endpoint for both
// success and failure.
type MessageResponse struct {
	Message string `json:"message"`
}

type InstagramPostResponse struct {
	InstagramPostID  string    `json:"instagram_post_id"`
	Shortcode        string    `json:"shortcode"`
	OwnerUsername    string    `json:"owner_username"`
	Caption          string    `json:"caption"`
	PostDate         time.Time `json:"post_date"`
	LikesCount       int64     `json:"likes_count"`
	CommentsCount    int64     `json:"comments_count"`
	OriginalImageURL string    `json:"original_image_url,omitempty"`
	OriginalVideoURL string    `json:"original_video_url,omitempty"`
	LocalImageID     *int64    `json:"local_image_id"`
	LocalVideoID     *int64    `json:"local_video_id"`
	URL              string    `json:"url"`
}

func FromImportedPost(p entities.ImportedPost) InstagramPostResponse {
	return InstagramPostResponse{
		InstagramPostID:  p.InstagramPostID,
		Shortcode:        p.Shortcode,
		OwnerUsername:    p.OwnerUsername,
		Caption:          p.Caption,
		PostDate:         p.PostDate,
		LikesCount:       p.LikesCount,
		CommentsCount:    p.CommentsCount,
		OriginalImageURL: p.OriginalImageURL,
		OriginalVideoURL: p.OriginalVideoURL,
		LocalImageID:     p.LocalImageID,
		LocalVideoID:     p.LocalVideoID,
		URL:              "https://www.instagram.com/p/" + p.Shortcode + "/",
	}
}

func FromImportedPosts(posts []entities.ImportedPost) []InstagramPostResponse {
	out := make([]InstagramPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, FromImportedPost(p))
	}
	return out
}
