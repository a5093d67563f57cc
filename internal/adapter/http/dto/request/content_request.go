package request

import (
	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase"
)

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required,oneof=instagram twitter facebook spotify soundcloud"`
	URL      string `json:"url" binding:"required,url"`
}

// ArtistRequest is used for create and full replace. Times are "HH:mm".
type ArtistRequest struct {
	Name        string              `json:"name" binding:"required"`
	Day         string              `json:"day" binding:"omitempty,oneof=friday saturday sunday"`
	StartTime   string              `json:"startTime" binding:"omitempty,clock"`
	EndTime     string              `json:"endTime" binding:"omitempty,clock"`
	Stage       string              `json:"stage" binding:"omitempty,oneof=main-stage outside-stage tent-area"`
	Bio         string              `json:"bio"`
	ImageID     *int64              `json:"imageId" binding:"omitempty,gt=0"`
	SocialLinks []SocialLinkRequest `json:"socialLinks" binding:"omitempty,dive"`
}

func (r ArtistRequest) ToInput() usecase.ArtistInput {
	in := usecase.ArtistInput{
		Name:      r.Name,
		Day:       entities.FestivalDay(r.Day),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Stage:     entities.Stage(r.Stage),
		Bio:       r.Bio,
		ImageID:   r.ImageID,
	}
	for _, l := range r.SocialLinks {
		in.SocialLinks = append(in.SocialLinks, entities.SocialLink{Platform: entities.SocialPlatform(l.Platform), URL: l.URL})
	}
	return in
}

// NewsArticleRequest accepts publishedDate as "2006-01-02" or RFC 3339.
type NewsArticleRequest struct {
	Title         string `json:"title" binding:"required"`
	CoverImageID  int64  `json:"coverImageId" binding:"required,gt=0"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content" binding:"required"`
	Category      string `json:"category"`
	PublishedDate string `json:"publishedDate" binding:"required,isodate"`
	Status        string `json:"status" binding:"omitempty,oneof=draft published"`
}

func (r NewsArticleRequest) ToInput() usecase.NewsInput {
	published, _ := ParseDate(r.PublishedDate)
	return usecase.NewsInput{
		Title:         r.Title,
		CoverImageID:  r.CoverImageID,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		Category:      r.Category,
		PublishedDate: published,
		Status:        entities.NewsStatus(r.Status),
	}
}

type FAQItemRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Order    *int64 `json:"order" binding:"omitempty,gte=0"`
}

func (r FAQItemRequest) ToInput() usecase.FAQInput {
	return usecase.FAQInput{Question: r.Question, Answer: r.Answer, Order: r.Order}
}
