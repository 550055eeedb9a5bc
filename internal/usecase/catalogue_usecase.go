package usecase

import (
	"context"

	"vinmart/internal/domain/entity"
)

// CategoryUsecase defines the category catalogue operations.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory rejects duplicate names and attaches a placeholder image.
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
}

// ProductUnitUsecase defines the product-unit catalogue operations.
type ProductUnitUsecase interface {
	ListProductUnits(ctx context.Context) ([]*entity.ProductUnit, error)

	// CreateProductUnit rejects duplicate names.
	CreateProductUnit(ctx context.Context, name string) (*entity.ProductUnit, error)
}
