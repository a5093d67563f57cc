package response

import (
	"time"

	"festival_backend/internal/domain/entities"
)

type SocialLinkResponse struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type ArtistResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Day         string               `json:"day,omitempty"`
	StartTime   string               `json:"startTime,omitempty"`
	EndTime     string               `json:"endTime,omitempty"`
	Stage       string               `json:"stage,omitempty"`
	Bio         string               `json:"bio,omitempty"`
	ImageID     *int64               `json:"imageId"`
	SocialLinks []SocialLinkResponse `json:"socialLinks"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func FromArtist(a entities.Artist) ArtistResponse {
	out := ArtistResponse{
		ID:          a.ID,
		Name:        a.Name,
		Day:         string(a.Day),
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Stage:       string(a.Stage),
		Bio:         a.Bio,
		ImageID:     a.ImageID,
		SocialLinks: make([]SocialLinkResponse, 0, len(a.SocialLinks)),
		UpdatedAt:   a.UpdatedAt,
	}
	for _, l := range a.SocialLinks {
		out.SocialLinks = append(out.SocialLinks, SocialLinkResponse{Platform: string(l.Platform), URL: l.URL})
	}
	return out
}

func FromArtists(artists []entities.Artist) []ArtistResponse {
	out := make([]ArtistResponse, 0, len(artists))
	for _, a := range artists {
		out = append(out, FromArtist(a))
	}
	return out
}

type NewsArticleResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	CoverImageID  int64     `json:"coverImageId"`
	Excerpt       string    `json:"excerpt,omitempty"`
	Content       string    `json:"content"`
	Category      string    `json:"category,omitempty"`
	PublishedDate time.Time `json:"publishedDate"`
	Status        string    `json:"status"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromNewsArticle(a entities.NewsArticle) NewsArticleResponse {
	return NewsArticleResponse{
		ID:            a.ID,
		Title:         a.Title,
		CoverImageID:  a.CoverImageID,
		Excerpt:       a.Excerpt,
		Content:       a.Content,
		Category:      a.Category,
		PublishedDate: a.PublishedDate,
		Status:        string(a.Status),
		UpdatedAt:     a.UpdatedAt,
	}
}

func FromNewsArticles(articles []entities.NewsArticle) []NewsArticleResponse {
	out := make([]NewsArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, FromNewsArticle(a))
	}
	return out
}

type FAQItemResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    *int64 `json:"order"`
}

func FromFAQItems(items []entities.FAQItem) []FAQItemResponse {
	out := make([]FAQItemResponse, 0, len(items))
	for _, f := range items {
		out = append(out, FromFAQItem(f))
	}
	return out
}

func FromFAQItem(f entities.FAQItem) FAQItemResponse {
	return FAQItemResponse{ID: f.ID, Question: f.Question, Answer: f.Answer, Order: f.Order}
}
