package handler

import (
	"log/slog"
	"net/http"

	"vinmart/internal/delivery/http/response"
	"vinmart/internal/delivery/http/validation"
	"vinmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductUnitHandler holds dependencies for the product-unit endpoints.
type ProductUnitHandler struct {
	uc     usecase.ProductUnitUsecase
	logger *slog.Logger
}

// NewProductUnitHandler is the constructor for ProductUnitHandler, injected by Fx.
func NewProductUnitHandler(uc usecase.ProductUnitUsecase, logger *slog.Logger) *ProductUnitHandler {
	return &ProductUnitHandler{
		uc:     uc,
		logger: logger,
	}
}

// productUnitJSON is the product-unit wire payload, id and name only.
type productUnitJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListProductUnits answers every unit wrapped as {"productUnits": [...]}.
func (h *ProductUnitHandler) ListProductUnits(c echo.Context) error {
	units, err := h.uc.ListProductUnits(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]productUnitJSON, 0, len(units))
	for _, unit := range units {
		data = append(data, productUnitJSON{ID: unit.ID, Name: unit.Name})
	}

	return response.JSON(c, http.StatusOK, map[string]any{"productUnits": data})
}

type createProductUnitRequest struct {
	Name *string `json:"name"`
}

// CreateProductUnit creates a product unit.
func (h *ProductUnitHandler) CreateProductUnit(c echo.Context) error {
	var req createProductUnitRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("name", req.Name).Required()
	if err := v.Err(); err != nil {
		return err
	}

	unit, err := h.uc.CreateProductUnit(c.Request().Context(), *req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, productUnitJSON{ID: unit.ID, Name: unit.Name})
}
