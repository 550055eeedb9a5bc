package entity

import "time"

// CartItem links an account to a product it intends to buy.
// At most one row exists per (user, product) pair.
type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	Product   *Product
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FavoriteItem marks a product as favorited by an account.
// At most one row exists per (user, product) pair.
type FavoriteItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Product   *Product
	CreatedAt time.Time
	UpdatedAt time.Time
}
