package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"festival_backend/internal/domain/entities"
	mock_interfaces "festival_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var newsNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type newsDeps struct {
	repo  *mock_interfaces.MockINewsArticleRepository
	media *mock_interfaces.MockIMediaRepository
	uc    *NewsUseCase
}

func newNewsDeps(t *testing.T) *newsDeps {
	ctrl := gomock.NewController(t)
	d := &newsDeps{
		repo:  mock_interfaces.NewMockINewsArticleRepository(ctrl),
		media: mock_interfaces.NewMockIMediaRepository(ctrl),
	}
	d.uc = NewNewsUseCase(d.repo, d.media, zaptest.NewLogger(t))
	d.uc.now = func() time.Time { return newsNow }
	return d
}

func newsFixtures() []entities.NewsArticle {
	return []entities.NewsArticle{
		{ID: "n-future", Status: entities.NewsStatusPublished, PublishedDate: newsNow.Add(24 * time.Hour)},
		{ID: "n-live", Status: entities.NewsStatusPublished, PublishedDate: newsNow.Add(-time.Hour)},
		{ID: "n-draft", Status: entities.NewsStatusDraft, PublishedDate: newsNow.Add(-time.Hour)},
	}
}

func TestNewsUseCase_ListHidesDraftsAndScheduled(t *testing.T) {
	d := newNewsDeps(t)
	d.repo.EXPECT().List(gomock.Any()).Return(newsFixtures(), nil).Times(2)

	public, err := d.uc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(public) != 1 || public[0].ID != "n-live" {
		t.Fatalf("expected only the live article, got %+v", public)
	}

	all, err := d.uc.List(context.Background(), true)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected every article for editors, got %d err=%v", len(all), err)
	}
}

func TestNewsUseCase_GetByID(t *testing.T) {
	t.Run("draft is hidden from readers", func(t *testing.T) {
		d := newNewsDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "n-draft").Return(newsFixtures()[2], nil)

		if _, err := d.uc.GetByID(context.Background(), "n-draft", false); !errors.Is(err, ErrNewsArticleNotFound) {
			t.Fatalf("expected ErrNewsArticleNotFound, got %v", err)
		}
	})

	t.Run("draft is visible to editors", func(t *testing.T) {
		d := newNewsDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "n-draft").Return(newsFixtures()[2], nil)

		if a, err := d.uc.GetByID(context.Background(), "n-draft", true); err != nil || a.ID != "n-draft" {
			t.Fatalf("unexpected result %+v err=%v", a, err)
		}
	})
}

func TestNewsUseCase_Create(t *testing.T) {
	valid := NewsInput{Title: "Lineup", CoverImageID: 5, Content: "Full lineup", PublishedDate: newsNow}

	t.Run("missing fields", func(t *testing.T) {
		for name, in := range map[string]NewsInput{
			"title":   {CoverImageID: 5, Content: "x", PublishedDate: newsNow},
			"content": {Title: "T", CoverImageID: 5, Content: " ", PublishedDate: newsNow},
			"date":    {Title: "T", CoverImageID: 5, Content: "x"},
			"cover":   {Title: "T", Content: "x", PublishedDate: newsNow},
			"status":  {Title: "T", CoverImageID: 5, Content: "x", PublishedDate: newsNow, Status: "archived"},
		} {
			d := newNewsDeps(t)
			if _, err := d.uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidNewsArticle) {
				t.Fatalf("%s: expected ErrInvalidNewsArticle, got %v", name, err)
			}
		}
	})

	t.Run("cover image must exist", func(t *testing.T) {
		d := newNewsDeps(t)
		d.media.EXPECT().GetByID(gomock.Any(), "5").Return(entities.Media{}, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		if _, err := d.uc.Create(context.Background(), valid); !errors.Is(err, ErrInvalidNewsArticle) {
			t.Fatalf("expected ErrInvalidNewsArticle, got %v", err)
		}
	})

	t.Run("defaults to draft", func(t *testing.T) {
		d := newNewsDeps(t)
		d.media.EXPECT().GetByID(gomock.Any(), "5").Return(entities.Media{ID: "5"}, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.NewsArticle) (entities.NewsArticle, error) {
				if a.Status != entities.NewsStatusDraft || a.Title != "Lineup" {
					t.Fatalf("unexpected article: %+v", a)
				}
				return a, nil
			})

		if _, err := d.uc.Create(context.Background(), valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNewsUseCase_UpdateMissing(t *testing.T) {
	d := newNewsDeps(t)
	d.repo.EXPECT().GetByID(gomock.Any(), "n-404").Return(entities.NewsArticle{}, nil)

	_, err := d.uc.Update(context.Background(), "n-404", NewsInput{Title: "x"})
	if !errors.Is(err, ErrNewsArticleNotFound) {
		t.Fatalf("expected ErrNewsArticleNotFound, got %v", err)
	}
}
