package request

import "testing"

func TestFetchInstagramPostsRequest_Resolve(t *testing.T) {
	r := FetchInstagramPostsRequest{UserID: " 42 ", InstagramUsername: "  festival  "}
	if got := r.ResolveUserID(); got != "42" {
		t.Fatalf("expected 42, got %q", got)
	}
	if got := r.ResolveUsername(); got != "festival" {
		t.Fatalf("expected festival, got %q", got)
	}
	if got := (FetchInstagramPostsRequest{InstagramUsername: "   "}).ResolveUsername(); got != "" {
		t.Fatalf("expected empty username, got %q", got)
	}
}
