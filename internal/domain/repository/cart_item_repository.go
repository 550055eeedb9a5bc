package repository

import (
	"context"
	"errors"

	"vinmart/internal/domain/entity"
)

var (
	// ErrCartItemNotFound is returned when a cart item does not exist for the owner.
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrFavoriteItemNotFound is returned when a favorite does not exist for the owner.
	ErrFavoriteItemNotFound = errors.New("favorite item not found")
)

// CartItemRepository defines owner-scoped persistence for cart items.
type CartItemRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error)
	FindByID(ctx context.Context, userID, id int64) (*entity.CartItem, error)
	FindByProduct(ctx context.Context, userID, productID int64) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	UpdateQuantity(ctx context.Context, userID, id int64, quantity int) error
	Delete(ctx context.Context, userID, id int64) error
}

// FavoriteItemRepository defines owner-scoped persistence for favorites.
type FavoriteItemRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*entity.FavoriteItem, error)
	FindByID(ctx context.Context, userID, id int64) (*entity.FavoriteItem, error)
	FindByProduct(ctx context.Context, userID, productID int64) (*entity.FavoriteItem, error)
	Create(ctx context.Context, item *entity.FavoriteItem) error
	Delete(ctx context.Context, userID, id int64) error
}
