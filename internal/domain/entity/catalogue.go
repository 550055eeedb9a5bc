package entity

import "time"

// PlaceholderImageURL is attached to catalogue records created without a real
// image upload.
const PlaceholderImageURL = "https://via.placeholder.com/150"

// Category groups products. Names are unique.
type Category struct {
	ID        int64
	Name      string
	Image     *Image
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductUnit is the unit a product is sold in ("kg", "each"). Names are unique.
type ProductUnit struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is a catalogue item. It always belongs to an existing Category and
// ProductUnit and carries at least one image.
type Product struct {
	ID            int64
	Name          string
	Price         float64
	Stock         int
	Description   string
	CategoryID    int64
	ProductUnitID int64
	Images        []*Image
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InStock reports whether the requested quantity can currently be fulfilled.
func (p *Product) InStock(quantity int) bool {
	return p.Stock >= quantity && p.Stock > 0
}

// Image is a stored image URL owned by exactly one of a user (avatar),
// a category or a product.
type Image struct {
	ID         int64
	URL        string
	UserID     *int64
	CategoryID *int64
	ProductID  *int64
}

// Review is a customer review of a product. The author's display name and
// avatar are joined in at read time, never stored on the row.
type Review struct {
	ID          int64
	ProductID   int64
	UserID      int64
	Rating      float64
	Description string
	UserName    string // enriched from the authoring account
	UserImage   string // enriched from the authoring account's avatar
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
