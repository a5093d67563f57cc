package request

import (
	"strings"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase"
)

// CreateProductRequest prices are in minor units (cents).
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"gte=0"`
	Currency    string `json:"currency" binding:"omitempty,currency"`
	ImageID     *int64 `json:"imageId" binding:"omitempty,gt=0"`
	Stock       *int64 `json:"stock" binding:"omitempty,gte=0"`
}

func (r CreateProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Currency:    normalizeCurrency(r.Currency),
		ImageID:     r.ImageID,
		Stock:       r.Stock,
	}
}

// UpdateProductRequest is a partial update. RemoveImage and RemoveStock clear
// the optional fields since JSON null cannot be told apart from absence here.
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	Currency    *string `json:"currency" binding:"omitempty,currency"`
	ImageID     *int64  `json:"imageId" binding:"omitempty,gt=0"`
	RemoveImage bool    `json:"removeImage"`
	Stock       *int64  `json:"stock" binding:"omitempty,gte=0"`
	RemoveStock bool    `json:"removeStock"`
}

func (r UpdateProductRequest) ToPatch() usecase.ProductPatch {
	patch := usecase.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageID:     r.ImageID,
		RemoveImage: r.RemoveImage,
		Stock:       r.Stock,
		RemoveStock: r.RemoveStock,
	}
	if r.Currency != nil {
		c := normalizeCurrency(*r.Currency)
		patch.Currency = &c
	}
	return patch
}

func normalizeCurrency(c string) entities.Currency {
	return entities.Currency(strings.ToLower(strings.TrimSpace(c)))
}
