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

// AddressHandler holds dependencies for the delivery address endpoints.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// addressJSON is the address wire payload.
type addressJSON struct {
	ID            int64     `json:"id"`
	RecipientName string    `json:"recipientName"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	ZipCode       int       `json:"zipCode"`
	Country       string    `json:"country"`
	Phone         string    `json:"phone"`
	Default       bool      `json:"default"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toAddressJSON(address *entity.Address) addressJSON {
	return addressJSON{
		ID:            address.ID,
		RecipientName: address.RecipientName,
		Address:       address.Address,
		City:          address.City,
		ZipCode:       address.ZipCode,
		Country:       address.Country,
		Phone:         address.Phone,
		Default:       address.Default,
		CreatedAt:     address.CreatedAt,
		UpdatedAt:     address.UpdatedAt,
	}
}

type addressRequest struct {
	RecipientName *string `json:"recipientName"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	ZipCode       *int    `json:"zipCode"`
	Country       *string `json:"country"`
	Phone         *string `json:"phone"`
	Default       *bool   `json:"default"`
}

// validateAddress runs the shared create/update body rules.
func (r *addressRequest) validate() error {
	v := validation.New()
	v.Body("recipientName", r.RecipientName).Required()
	v.Body("address", r.Address).Required()
	v.Body("city", r.City).Required()
	v.Body("zipCode", r.ZipCode).Required().Int()
	v.Body("country", r.Country).Required()
	v.Body("phone", r.Phone).Required().Phone()

	return v.Err()
}

func (r *addressRequest) toInput() *usecase.AddressInput {
	input := &usecase.AddressInput{
		RecipientName: *r.RecipientName,
		Address:       *r.Address,
		City:          *r.City,
		ZipCode:       *r.ZipCode,
		Country:       *r.Country,
		Phone:         *r.Phone,
	}
	if r.Default != nil {
		input.Default = *r.Default
	}

	return input
}

// ListAddresses answers the owner's addresses wrapped as {"addresses": [...]}.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.uc.ListAddresses(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]addressJSON, 0, len(addresses))
	for _, address := range addresses {
		data = append(data, toAddressJSON(address))
	}

	return response.JSON(c, http.StatusOK, map[string]any{"addresses": data})
}

// CreateAddress adds a delivery address for the owner.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req addressRequest
	bindBody(c, &req)

	if err := req.validate(); err != nil {
		return err
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), middleware.CurrentUserID(c), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toAddressJSON(address))
}

// UpdateAddress replaces the fields of an existing address.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	v := validation.New()
	v.Param("addressId", c.Param("addressId")).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	var req addressRequest
	bindBody(c, &req)

	if err := req.validate(); err != nil {
		return err
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), middleware.CurrentUserID(c), pathID(c, "addressId"), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toAddressJSON(address))
}

// DeleteAddress removes an address.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	v := validation.New()
	v.Param("addressId", c.Param("addressId")).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	err := h.uc.DeleteAddress(c.Request().Context(), middleware.CurrentUserID(c), pathID(c, "addressId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Empty(c, http.StatusOK)
}
