package response

import (
	"testing"

	"festival_backend/internal/domain/entities"
)

func TestFromImportedPost(t *testing.T) {
	img := int64(12)
	res := FromImportedPost(entities.ImportedPost{
		InstagramPostID: "3100",
		Shortcode:       "Cabc",
		OwnerUsername:   "festival",
		LocalImageID:    &img,
	})
	if res.URL != "https://www.instagram.com/p/Cabc/" {
		t.Fatalf("unexpected url %q", res.URL)
	}
	if res.LocalImageID == nil || *res.LocalImageID != 12 || res.LocalVideoID != nil {
		t.Fatalf("unexpected media refs: %+v", res)
	}
}
