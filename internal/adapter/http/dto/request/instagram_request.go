package request

import "strings"

// FetchInstagramPostsRequest triggers one Instagram sync for the caller.
type FetchInstagramPostsRequest struct {
	UserID            string `json:"userId"`
	InstagramUsername string `json:"instagramUsername"`
}

func (r FetchInstagramPostsRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r FetchInstagramPostsRequest) ResolveUsername() string {
	return strings.TrimSpace(r.InstagramUsername)
}
