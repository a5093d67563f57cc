package entities

import "time"

// ImportedPost is a social-media post mirrored into local storage.
//
// Storage model (DynamoDB):
//   - PK: instagram_post_id, so at most one record can exist per external post.
//
// Local media references point at Media.ID and stay nil when the asset could
// not be imported.
type ImportedPost struct {
	InstagramPostID  string    `json:"instagram_post_id"`
	Shortcode        string    `json:"shortcode"`
	OwnerUsername    string    `json:"owner_username"`
	OriginalImageURL string    `json:"original_image_url,omitempty"`
	LocalImageID     *int64    `json:"local_image_id,omitempty"`
	OriginalVideoURL string    `json:"original_video_url,omitempty"`
	LocalVideoID     *int64    `json:"local_video_id,omitempty"`
	Caption          string    `json:"caption"`
	PostDate         time.Time `json:"post_date"`
	LikesCount       int64     `json:"likes_count"`
	CommentsCount    int64     `json:"comments_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProfilePost is one item of a scraped profile timeline, already flattened from
// the upstream edge/node layout.
type ProfilePost struct {
	ID            string
	Shortcode     string
	IsVideo       bool
	DisplayURL    string
	VideoURL      string
	Caption       string
	TakenAt       time.Time
	LikesCount    int64
	CommentsCount int64
}

// SyncReport summarises one sync run.
type SyncReport struct {
	Username         string `json:"username"`
	Added            int    `json:"added"`
	UpdatedOrSkipped int    `json:"updated_or_skipped"`
	MediaFailures    int    `json:"media_failures"`
	TotalSeen        int    `json:"total_seen"`
	Message          string `json:"message"`
}
