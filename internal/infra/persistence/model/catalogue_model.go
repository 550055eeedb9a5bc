package model

import "time"

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Image *ImageModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductUnitModel mirrors the 'product_units' table.
type ProductUnitModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(50);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductUnitModel) TableName() string {
	return "product_units"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(255);unique;not null"`
	Price         float64 `gorm:"type:decimal(12,2);not null"`
	Stock         int     `gorm:"not null;check:stock >= 0"`
	Description   string  `gorm:"type:text"`
	CategoryID    int64   `gorm:"not null;index"`
	ProductUnitID int64   `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Images []*ImageModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ImageModel mirrors the 'images' table. Exactly one of the owner FKs is set.
type ImageModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	URL        string `gorm:"type:text;not null"`
	UserID     *int64 `gorm:"uniqueIndex"`
	CategoryID *int64 `gorm:"index"`
	ProductID  *int64 `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	ProductID   int64   `gorm:"not null;index"`
	UserID      int64   `gorm:"not null;index"`
	Rating      float64 `gorm:"not null"`
	Description string  `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
