package repository

import (
	"context"
	"errors"

	"vinmart/internal/domain/entity"
)

var (
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrProductUnitNotFound is returned when a product unit does not exist.
	ErrProductUnitNotFound = errors.New("product unit not found")

	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
)

// CategoryRepository defines persistence for product categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
}

// ProductUnitRepository defines persistence for product units.
type ProductUnitRepository interface {
	List(ctx context.Context) ([]*entity.ProductUnit, error)
	FindByID(ctx context.Context, id int64) (*entity.ProductUnit, error)
	FindByName(ctx context.Context, name string) (*entity.ProductUnit, error)
	Create(ctx context.Context, unit *entity.ProductUnit) error
}

// ProductFilter describes the optional, independently composable listing filters.
// SortBy/OrderBy only take effect when both are set.
type ProductFilter struct {
	Search     string
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	Limit      int
	Offset     int
	SortBy     string
	OrderBy    string
}

// ProductRepository defines persistence for products.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
}

// ReviewRepository defines persistence for product reviews. Listing returns
// reviews enriched with the authoring account's name and avatar URL.
type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
}
