package usecase

import (
	"context"
	"errors"
	"strings"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrFAQItemNotFound = errors.New("faq item not found")
	ErrInvalidFAQItem  = errors.New("invalid faq item")
)

type FAQInput struct {
	Question string
	Answer   string
	Order    *int64
}

type IFAQUseCase interface {
	Create(ctx context.Context, in FAQInput) (entities.FAQItem, error)
	Update(ctx context.Context, id string, in FAQInput) (entities.FAQItem, error)
	GetByID(ctx context.Context, id string) (entities.FAQItem, error)
	List(ctx context.Context) ([]entities.FAQItem, error)
	Delete(ctx context.Context, id string) error
}

type FAQUseCase struct {
	repo interfaces.IFAQItemRepository
	log  *zap.Logger
}

var _ IFAQUseCase = (*FAQUseCase)(nil)

func NewFAQUseCase(repo interfaces.IFAQItemRepository, log *zap.Logger) *FAQUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &FAQUseCase{repo: repo, log: log.Named("faq")}
}

func (u *FAQUseCase) Create(ctx context.Context, in FAQInput) (entities.FAQItem, error) {
	f := applyFAQInput(entities.FAQItem{}, in)
	if err := validateFAQItem(f); err != nil {
		return entities.FAQItem{}, err
	}
	created, err := u.repo.Create(ctx, f)
	if err != nil {
		u.log.Error("faq item create failed", zap.Error(err))
		return entities.FAQItem{}, err
	}
	return created, nil
}

func (u *FAQUseCase) Update(ctx context.Context, id string, in FAQInput) (entities.FAQItem, error) {
	prev, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FAQItem{}, err
	}
	next := applyFAQInput(prev, in)
	if err := validateFAQItem(next); err != nil {
		return entities.FAQItem{}, err
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		u.log.Error("faq item update failed", zap.String("faq_id", prev.ID), zap.Error(err))
		return entities.FAQItem{}, err
	}
	if updated.ID == "" {
		return entities.FAQItem{}, ErrFAQItemNotFound
	}
	return updated, nil
}

func (u *FAQUseCase) GetByID(ctx context.Context, id string) (entities.FAQItem, error) {
	f, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.FAQItem{}, err
	}
	if f.ID == "" {
		return entities.FAQItem{}, ErrFAQItemNotFound
	}
	return f, nil
}

func (u *FAQUseCase) List(ctx context.Context) ([]entities.FAQItem, error) {
	return u.repo.List(ctx)
}

func (u *FAQUseCase) Delete(ctx context.Context, id string) error {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, f.ID)
}

func applyFAQInput(f entities.FAQItem, in FAQInput) entities.FAQItem {
	f.Question = strings.TrimSpace(in.Question)
	f.Answer = in.Answer
	f.Order = in.Order
	return f
}

func validateFAQItem(f entities.FAQItem) error {
	switch {
	case f.Question == "":
		return detailed(ErrInvalidFAQItem, "Question is required")
	case strings.TrimSpace(f.Answer) == "":
		return detailed(ErrInvalidFAQItem, "Answer is required")
	case f.Order != nil && *f.Order < 0:
		return detailed(ErrInvalidFAQItem, "Order must not be negative")
	}
	return nil
}
