package usecase

import (
	"context"

	"vinmart/internal/domain/entity"
)

// CartUsecase defines owner-scoped cart operations.
type CartUsecase interface {
	ListCartItems(ctx context.Context, userID int64) ([]*entity.CartItem, error)

	// AddCartItem enforces one row per (user, product) and the stock check.
	AddCartItem(ctx context.Context, userID, productID int64) (*entity.CartItem, error)

	// UpdateCartItem changes the quantity, re-checking stock.
	UpdateCartItem(ctx context.Context, userID, cartItemID int64, quantity int) (*entity.CartItem, error)

	DeleteCartItem(ctx context.Context, userID, cartItemID int64) error
}

// FavoriteUsecase defines owner-scoped favorites operations.
type FavoriteUsecase interface {
	ListFavoriteItems(ctx context.Context, userID int64) ([]*entity.FavoriteItem, error)

	// AddFavoriteItem enforces one row per (user, product).
	AddFavoriteItem(ctx context.Context, userID, productID int64) (*entity.FavoriteItem, error)

	DeleteFavoriteItem(ctx context.Context, userID, favoriteItemID int64) error
}
