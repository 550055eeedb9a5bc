package usecase

import (
	"context"

	"vinmart/internal/domain/entity"
)

// PaymentMethodUsecase defines owner-scoped payment method operations.
type PaymentMethodUsecase interface {
	ListPaymentMethods(ctx context.Context, userID int64) ([]*entity.PaymentMethod, error)

	// AddPaymentMethod rejects unknown payment types.
	AddPaymentMethod(ctx context.Context, userID int64, paymentType string) (*entity.PaymentMethod, error)

	DeletePaymentMethod(ctx context.Context, userID, paymentMethodID int64) error
}
