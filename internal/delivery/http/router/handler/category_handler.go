package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vinmart/internal/delivery/http/response"
	"vinmart/internal/delivery/http/validation"
	"vinmart/internal/domain/entity"
	"vinmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for the category catalogue endpoints.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// categoryJSON is the category wire payload. The image relation flattens to
// its URL; the create payload never carries one.
type categoryJSON struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Image     string    `json:"image,omitempty"`
}

func toCategoryJSON(category *entity.Category) categoryJSON {
	data := categoryJSON{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
	if category.Image != nil {
		data.Image = category.Image.URL
	}

	return data
}

// ListCategories answers every category wrapped as {"categories": [...]}.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]categoryJSON, 0, len(categories))
	for _, category := range categories {
		data = append(data, toCategoryJSON(category))
	}

	return response.JSON(c, http.StatusOK, map[string]any{"categories": data})
}

type createCategoryRequest struct {
	Name *string `json:"name"`
}

// CreateCategory creates a category with a placeholder image.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("name", req.Name).Required()
	if err := v.Err(); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), *req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, categoryJSON{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	})
}
