package model

import "time"

// CartItemModel mirrors the 'cart_items' table. The composite unique index
// backs up the read-then-write duplicate check in the service layer.
type CartItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int   `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// FavoriteItemModel mirrors the 'favorite_items' table.
type FavoriteItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_favorite_items_user_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_favorite_items_user_product"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteItemModel) TableName() string {
	return "favorite_items"
}
