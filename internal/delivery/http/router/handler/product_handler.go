package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vinmart/internal/delivery/http/middleware"
	"vinmart/internal/delivery/http/response"
	"vinmart/internal/delivery/http/validation"
	"vinmart/internal/domain/entity"
	"vinmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the product and review endpoints.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// productJSON is the product wire payload. Images flatten to their URLs.
type productJSON struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Stock         int       `json:"quantityStock"`
	CategoryID    int64     `json:"categoryId"`
	ProductUnitID int64     `json:"productUnitId"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toProductJSON(product *entity.Product) productJSON {
	images := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, image.URL)
	}

	return productJSON{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Stock:         product.Stock,
		CategoryID:    product.CategoryID,
		ProductUnitID: product.ProductUnitID,
		Images:        images,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// reviewJSON is the review wire payload, enriched with the author's display
// name and avatar.
type reviewJSON struct {
	ID          int64     `json:"id"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	UserName    string    `json:"userName"`
	UserImage   string    `json:"userImage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toReviewJSON(review *entity.Review) reviewJSON {
	return reviewJSON{
		ID:          review.ID,
		Rating:      review.Rating,
		Description: review.Description,
		UserName:    review.UserName,
		UserImage:   review.UserImage,
		CreatedAt:   review.CreatedAt,
		UpdatedAt:   review.UpdatedAt,
	}
}

// ListProducts answers the filtered product listing wrapped as
// {"products": [...]}. Every filter is optional.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	v := validation.New()
	v.Query("categoryId", c.QueryParam("categoryId")).Int()
	v.Query("rating", c.QueryParam("rating")).Int()
	v.Query("minPrice", c.QueryParam("minPrice")).Int()
	v.Query("maxPrice", c.QueryParam("maxPrice")).Int()
	v.Query("page", c.QueryParam("page")).Int()
	v.Query("limit", c.QueryParam("limit")).Int()
	if err := v.Err(); err != nil {
		return err
	}

	products, err := h.uc.ListProducts(c.Request().Context(), &usecase.ListProductsQuery{
		Search:     c.QueryParam("search"),
		CategoryID: queryInt64(c, "categoryId"),
		MinPrice:   queryFloat64(c, "minPrice"),
		MaxPrice:   queryFloat64(c, "maxPrice"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
		SortBy:     c.QueryParam("sortBy"),
		OrderBy:    c.QueryParam("orderBy"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]productJSON, 0, len(products))
	for _, product := range products {
		data = append(data, toProductJSON(product))
	}

	return response.JSON(c, http.StatusOK, map[string]any{"products": data})
}

// GetProduct answers a single product by id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	v := validation.New()
	v.Param("productId", c.Param("productId")).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), pathID(c, "productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toProductJSON(product))
}

type createProductRequest struct {
	CategoryID    *int64   `json:"categoryId"`
	ProductUnitID *int64   `json:"productUnitId"`
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	Stock         *int     `json:"quantityStock"`
}

// CreateProduct creates a product with placeholder images.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("categoryId", req.CategoryID).Required().Int()
	v.Body("productUnitId", req.ProductUnitID).Required().Int()
	v.Body("name", req.Name).Required()
	v.Body("price", req.Price).Required().Int()
	v.Body("description", req.Description).Required()
	v.Body("quantityStock", req.Stock).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:          *req.Name,
		Price:         *req.Price,
		Stock:         *req.Stock,
		Description:   *req.Description,
		CategoryID:    *req.CategoryID,
		ProductUnitID: *req.ProductUnitID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toProductJSON(product))
}

// ListReviews answers the reviews of a product wrapped as {"reviews": [...]}.
func (h *ProductHandler) ListReviews(c echo.Context) error {
	v := validation.New()
	v.Param("productId", c.Param("productId")).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), pathID(c, "productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]reviewJSON, 0, len(reviews))
	for _, review := range reviews {
		data = append(data, toReviewJSON(review))
	}

	return response.JSON(c, http.StatusOK, map[string]any{"reviews": data})
}

type createReviewRequest struct {
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
}

// CreateReview creates a review on a product by the authenticated account.
func (h *ProductHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	bindBody(c, &req)

	v := validation.New()
	v.Param("productId", c.Param("productId")).Required().Int()
	v.Body("rating", req.Rating).Required().Float()
	v.Body("description", req.Description).Required()
	if err := v.Err(); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), middleware.CurrentUserID(c), pathID(c, "productId"), &usecase.CreateReviewInput{
		Rating:      *req.Rating,
		Description: *req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toReviewJSON(review))
}
