package usecase

import (
	"context"

	"vinmart/internal/domain/entity"
)

// ProductUsecase defines the product catalogue and review operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, query *ListProductsQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// CreateProduct rejects duplicate names and accumulates one error per
	// missing category/unit reference instead of failing on the first.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// ListReviews requires the parent product to exist.
	ListReviews(ctx context.Context, productID int64) ([]*entity.Review, error)

	// CreateReview requires the parent product to exist and enriches the
	// response with the author's name and avatar.
	CreateReview(ctx context.Context, userID, productID int64, input *CreateReviewInput) (*entity.Review, error)
}

// --- Input DTOs ---

// ListProductsQuery carries the optional listing filters. Pointer fields are
// nil when the query parameter was absent. Sorting only applies when both
// SortBy and OrderBy are set.
type ListProductsQuery struct {
	Search     string
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	Page       *int
	Limit      *int
	SortBy     string
	OrderBy    string
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Stock         int     `json:"quantityStock"`
	Description   string  `json:"description"`
	CategoryID    int64   `json:"categoryId"`
	ProductUnitID int64   `json:"productUnitId"`
}

// CreateReviewInput defines the data required to create a review.
type CreateReviewInput struct {
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}
