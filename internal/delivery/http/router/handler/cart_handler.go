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

// CartHandler holds dependencies for the cart endpoints.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// cartItemJSON is the cart item wire payload.
type cartItemJSON struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func toCartItemJSON(item *entity.CartItem) cartItemJSON {
	return cartItemJSON{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}

// ListCartItems answers the owner's cart wrapped as {"cartItems": [...]}.
func (h *CartHandler) ListCartItems(c echo.Context) error {
	items, err := h.uc.ListCartItems(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]cartItemJSON, 0, len(items))
	for _, item := range items {
		data = append(data, toCartItemJSON(item))
	}

	return response.JSON(c, http.StatusOK, map[string]any{"cartItems": data})
}

type addCartItemRequest struct {
	ProductID *int64 `json:"productId"`
}

// AddCartItem puts one unit of a product into the cart.
func (h *CartHandler) AddCartItem(c echo.Context) error {
	var req addCartItemRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("productId", req.ProductID).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	item, err := h.uc.AddCartItem(c.Request().Context(), middleware.CurrentUserID(c), *req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toCartItemJSON(item))
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateCartItem changes the quantity of a cart item.
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	var req updateCartItemRequest
	bindBody(c, &req)

	v := validation.New()
	v.Param("cartItemId", c.Param("cartItemId")).Required().Int()
	v.Body("quantity", req.Quantity).Required().Int().Min(1)
	if err := v.Err(); err != nil {
		return err
	}

	item, err := h.uc.UpdateCartItem(c.Request().Context(), middleware.CurrentUserID(c), pathID(c, "cartItemId"), *req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toCartItemJSON(item))
}

// DeleteCartItem removes a cart item.
func (h *CartHandler) DeleteCartItem(c echo.Context) error {
	v := validation.New()
	v.Param("cartItemId", c.Param("cartItemId")).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	err := h.uc.DeleteCartItem(c.Request().Context(), middleware.CurrentUserID(c), pathID(c, "cartItemId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Empty(c, http.StatusOK)
}
