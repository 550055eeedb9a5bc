package impl

import (
	"context"
	"log/slog"

	deliverycontext "vinmart/internal/delivery/context"
	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/usecase"

	"github.com/pkg/errors"
)

// paymentMethodService implements the PaymentMethodUsecase interface.
type paymentMethodService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPaymentMethodService is the constructor for paymentMethodService.
func NewPaymentMethodService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PaymentMethodUsecase {
	return &paymentMethodService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentMethodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPaymentMethods returns the caller's registered payment methods.
func (srv *paymentMethodService) ListPaymentMethods(ctx context.Context, userID int64) ([]*entity.PaymentMethod, error) {
	var methods []*entity.PaymentMethod

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PaymentMethodRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list payment methods")
		}
		methods = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return methods, nil
}

// AddPaymentMethod registers a payment provider for the caller. Unknown
// provider names are rejected.
func (srv *paymentMethodService) AddPaymentMethod(ctx context.Context, userID int64, paymentType string) (*entity.PaymentMethod, error) {
	srv.log(ctx).Debug("Adding payment method", "userID", userID, "type", paymentType)

	if !entity.ValidPaymentType(paymentType) {
		return nil, domainerrors.Validation(
			domainerrors.BodyField(paymentType, domainerrors.MsgPaymentTypeNotExist, "paymentType"),
		)
	}

	method := &entity.PaymentMethod{
		UserID: userID,
		Type:   entity.PaymentType(paymentType),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PaymentMethodRepo().Create(ctx, method); err != nil {
			return errors.Wrap(err, "failed to create payment method")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return method, nil
}

// DeletePaymentMethod removes a payment method the caller owns.
func (srv *paymentMethodService) DeletePaymentMethod(ctx context.Context, userID, paymentMethodID int64) error {
	srv.log(ctx).Debug("Deleting payment method", "userID", userID, "paymentMethodID", paymentMethodID)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PaymentMethodRepo().Delete(ctx, userID, paymentMethodID); err != nil {
			if errors.Is(err, repository.ErrPaymentMethodNotFound) {
				return domainerrors.NotFoundItem("paymentMethodId", paymentMethodID)
			}

			return errors.Wrap(err, "failed to delete payment method")
		}

		return nil
	})
}
