package repository

import (
	"context"
	"errors"

	"vinmart/internal/domain/entity"
)

// ErrPaymentMethodNotFound is returned when a payment method does not exist for the owner.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethodRepository defines owner-scoped persistence for payment methods.
type PaymentMethodRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*entity.PaymentMethod, error)
	FindByID(ctx context.Context, userID, id int64) (*entity.PaymentMethod, error)
	Create(ctx context.Context, method *entity.PaymentMethod) error
	Delete(ctx context.Context, userID, id int64) error
}
