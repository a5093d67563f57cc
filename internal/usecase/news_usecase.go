package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrNewsArticleNotFound = errors.New("news article not found")
	ErrInvalidNewsArticle  = errors.New("invalid news article")
)

// NewsInput replaces every editable field on Update. An empty Status means
// draft.
type NewsInput struct {
	Title         string
	CoverImageID  int64
	Excerpt       string
	Content       string
	Category      string
	PublishedDate time.Time
	Status        entities.NewsStatus
}

// INewsUseCase reads with includeHidden false for anonymous readers, which
// hides drafts and posts dated in the future.
type INewsUseCase interface {
	Create(ctx context.Context, in NewsInput) (entities.NewsArticle, error)
	Update(ctx context.Context, id string, in NewsInput) (entities.NewsArticle, error)
	GetByID(ctx context.Context, id string, includeHidden bool) (entities.NewsArticle, error)
	List(ctx context.Context, includeHidden bool) ([]entities.NewsArticle, error)
	Delete(ctx context.Context, id string) error
}

type NewsUseCase struct {
	repo  interfaces.INewsArticleRepository
	media interfaces.IMediaRepository
	now   func() time.Time
	log   *zap.Logger
}

var _ INewsUseCase = (*NewsUseCase)(nil)

func NewNewsUseCase(repo interfaces.INewsArticleRepository, media interfaces.IMediaRepository, log *zap.Logger) *NewsUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &NewsUseCase{repo: repo, media: media, now: time.Now, log: log.Named("news")}
}

func (u *NewsUseCase) Create(ctx context.Context, in NewsInput) (entities.NewsArticle, error) {
	a := applyNewsInput(entities.NewsArticle{}, in)
	if err := u.validate(ctx, a); err != nil {
		return entities.NewsArticle{}, err
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.log.Error("news article create failed", zap.String("title", a.Title), zap.Error(err))
		return entities.NewsArticle{}, err
	}
	return created, nil
}

func (u *NewsUseCase) Update(ctx context.Context, id string, in NewsInput) (entities.NewsArticle, error) {
	prev, err := u.GetByID(ctx, id, true)
	if err != nil {
		return entities.NewsArticle{}, err
	}
	next := applyNewsInput(prev, in)
	if err := u.validate(ctx, next); err != nil {
		return entities.NewsArticle{}, err
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		u.log.Error("news article update failed", zap.String("article_id", prev.ID), zap.Error(err))
		return entities.NewsArticle{}, err
	}
	if updated.ID == "" {
		return entities.NewsArticle{}, ErrNewsArticleNotFound
	}
	return updated, nil
}

// GetByID reports hidden articles as not found unless includeHidden is set.
func (u *NewsUseCase) GetByID(ctx context.Context, id string, includeHidden bool) (entities.NewsArticle, error) {
	a, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.NewsArticle{}, err
	}
	if a.ID == "" || (!includeHidden && !a.VisibleAt(u.now())) {
		return entities.NewsArticle{}, ErrNewsArticleNotFound
	}
	return a, nil
}

func (u *NewsUseCase) List(ctx context.Context, includeHidden bool) ([]entities.NewsArticle, error) {
	all, err := u.repo.List(ctx)
	if err != nil || includeHidden {
		return all, err
	}
	now := u.now()
	visible := make([]entities.NewsArticle, 0, len(all))
	for _, a := range all {
		if a.VisibleAt(now) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

func (u *NewsUseCase) Delete(ctx context.Context, id string) error {
	a, err := u.GetByID(ctx, id, true)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, a.ID)
}

func applyNewsInput(a entities.NewsArticle, in NewsInput) entities.NewsArticle {
	a.Title = strings.TrimSpace(in.Title)
	a.CoverImageID = in.CoverImageID
	a.Excerpt = in.Excerpt
	a.Content = in.Content
	a.Category = strings.TrimSpace(in.Category)
	a.PublishedDate = in.PublishedDate.UTC()
	a.Status = in.Status
	if a.Status == "" {
		a.Status = entities.NewsStatusDraft
	}
	return a
}

func (u *NewsUseCase) validate(ctx context.Context, a entities.NewsArticle) error {
	switch {
	case a.Title == "":
		return detailed(ErrInvalidNewsArticle, "Title is required")
	case strings.TrimSpace(a.Content) == "":
		return detailed(ErrInvalidNewsArticle, "Content is required")
	case a.PublishedDate.IsZero():
		return detailed(ErrInvalidNewsArticle, "Published date is required")
	case !a.Status.Valid():
		return detailed(ErrInvalidNewsArticle, "Unsupported status %q", a.Status)
	case a.CoverImageID <= 0:
		return detailed(ErrInvalidNewsArticle, "Cover image is required")
	}
	ok, err := mediaExists(ctx, u.media, a.CoverImageID)
	if err != nil {
		return err
	}
	if !ok {
		return detailed(ErrInvalidNewsArticle, "Cover image %d not found", a.CoverImageID)
	}
	return nil
}
