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

// PaymentMethodHandler holds dependencies for the payment method endpoints.
type PaymentMethodHandler struct {
	uc     usecase.PaymentMethodUsecase
	logger *slog.Logger
}

// NewPaymentMethodHandler is the constructor for PaymentMethodHandler, injected by Fx.
func NewPaymentMethodHandler(uc usecase.PaymentMethodUsecase, logger *slog.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		uc:     uc,
		logger: logger,
	}
}

// paymentMethodJSON is the payment method wire payload.
type paymentMethodJSON struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

func toPaymentMethodJSON(method *entity.PaymentMethod) paymentMethodJSON {
	return paymentMethodJSON{
		ID:   method.ID,
		Type: string(method.Type),
	}
}

// ListPaymentMethods answers the owner's payment methods wrapped as
// {"paymentMethods": [...]}.
func (h *PaymentMethodHandler) ListPaymentMethods(c echo.Context) error {
	methods, err := h.uc.ListPaymentMethods(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]paymentMethodJSON, 0, len(methods))
	for _, method := range methods {
		data = append(data, toPaymentMethodJSON(method))
	}

	return response.JSON(c, http.StatusOK, map[string]any{"paymentMethods": data})
}

type addPaymentMethodRequest struct {
	PaymentType *string `json:"paymentType"`
}

// AddPaymentMethod registers a payment provider for the owner.
func (h *PaymentMethodHandler) AddPaymentMethod(c echo.Context) error {
	var req addPaymentMethodRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("paymentType", req.PaymentType).Required()
	if err := v.Err(); err != nil {
		return err
	}

	method, err := h.uc.AddPaymentMethod(c.Request().Context(), middleware.CurrentUserID(c), *req.PaymentType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toPaymentMethodJSON(method))
}

// DeletePaymentMethod removes a payment method.
func (h *PaymentMethodHandler) DeletePaymentMethod(c echo.Context) error {
	v := validation.New()
	v.Param("paymentMethodId", c.Param("paymentMethodId")).Required().Int()
	if err := v.Err(); err != nil {
		return err
	}

	err := h.uc.DeletePaymentMethod(c.Request().Context(), middleware.CurrentUserID(c), pathID(c, "paymentMethodId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Empty(c, http.StatusOK)
}
