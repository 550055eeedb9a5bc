package handler

import (
	"log/slog"
	"net/http"

	"vinmart/internal/delivery/http/middleware"
	"vinmart/internal/delivery/http/response"
	"vinmart/internal/delivery/http/validation"
	"vinmart/internal/domain/entity"
	"vinmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for the favorites endpoints.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// favoriteItemJSON is the favorite item wire payload.
type favoriteItemJSON struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
}

func toFavoriteItemJSON(item *entity.FavoriteItem) favoriteItemJSON {
	return favoriteItemJSON{
		ID:        item.ID,
		ProductID: item.ProductID,
	}
}

// ListFavoriteItems answers the owner's favorites wrapped as
// {"favoriteItems": [...]}.
func (h *FavoriteHandler) ListFavoriteItems(c echo.Context) error {
	items, err := h.uc.ListFavoriteItems(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]favoriteItemJSON, 0, len(items))
	for _, item := range items {
		data = append(data, toFavoriteItemJSON(item))
	}

	return response.JSON(c, http.StatusOK, map[string]any{"favoriteItems": data})
}

type addFavoriteItemRequest struct {
	ProductID *int64 `json:"productId"`
}

// AddFavoriteItem marks a product as favorite.
func (h *FavoriteHandler) AddFavoriteItem(c echo.Context) error {
	var req addFavoriteItemRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("productId", req.ProductID).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	item, err := h.uc.AddFavoriteItem(c.Request().Context(), middleware.CurrentUserID(c), *req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toFavoriteItemJSON(item))
}

// DeleteFavoriteItem removes a favorite.
func (h *FavoriteHandler) DeleteFavoriteItem(c echo.Context) error {
	v := validation.New()
	v.Param("favoriteItemId", c.Param("favoriteItemId")).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	err := h.uc.DeleteFavoriteItem(c.Request().Context(), middleware.CurrentUserID(c), pathID(c, "favoriteItemId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Empty(c, http.StatusOK)
}
