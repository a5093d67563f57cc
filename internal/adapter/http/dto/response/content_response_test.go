package response

import (
	"encoding/json"
	"strings"
	"testing"

	"festival_backend/internal/domain/entities"
)

func TestFromArtist_EmptyLinksEncodeAsArray(t *testing.T) {
	raw, err := json.Marshal(FromArtist(entities.Artist{ID: "a-1", Name: "A"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"socialLinks":[]`) || !strings.Contains(string(raw), `"imageId":null`) {
		t.Fatalf("unexpected json %s", raw)
	}
}

func TestFromContentLists(t *testing.T) {
	if got := FromArtists(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty artist list, got %+v", got)
	}
	if got := FromNewsArticles(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty news list, got %+v", got)
	}
	order := int64(2)
	faq := FromFAQItems([]entities.FAQItem{{ID: "f-1", Question: "Q", Answer: "A", Order: &order}})
	if len(faq) != 1 || faq[0].Order == nil || *faq[0].Order != 2 {
		t.Fatalf("unexpected faq: %+v", faq)
	}
}
