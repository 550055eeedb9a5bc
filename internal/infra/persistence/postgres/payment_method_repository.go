package postgres

import (
	"context"

	"vinmart/internal/domain/entity"
	"vinmart/internal/domain/repository"
	"vinmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentMethodRepository implements the domain.PaymentMethodRepository interface using GORM.
type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository is the constructor for paymentMethodRepository.
func NewPaymentMethodRepository(db *gorm.DB) repository.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

// ListByUser returns all payment methods registered by the user.
func (repo *paymentMethodRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.PaymentMethod, error) {
	var methodModels []*model.PaymentMethodModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&methodModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods by user")
	}

	methods := make([]*entity.PaymentMethod, 0, len(methodModels))
	for _, methodM := range methodModels {
		methods = append(methods, toPaymentMethodDomain(methodM))
	}

	return methods, nil
}

// FindByID retrieves a payment method by id, scoped to the owning user.
func (repo *paymentMethodRepository) FindByID(ctx context.Context, userID, id int64) (*entity.PaymentMethod, error) {
	var methodM model.PaymentMethodModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&methodM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentMethodNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment method by id")
	}

	return toPaymentMethodDomain(&methodM), nil
}

// Create persists a new payment method.
func (repo *paymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	methodM := &model.PaymentMethodModel{
		UserID: method.UserID,
		Type:   string(method.Type),
	}

	if err := repo.db.WithContext(ctx).Create(methodM).Error; err != nil {
		return errors.Wrap(err, "failed to create payment method")
	}

	method.ID = methodM.ID

	return nil
}

// Delete removes a payment method owned by the user.
func (repo *paymentMethodRepository) Delete(ctx context.Context, userID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PaymentMethodModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete payment method")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentMethodNotFound
	}

	return nil
}

func toPaymentMethodDomain(data *model.PaymentMethodModel) *entity.PaymentMethod {
	if data == nil {
		return nil
	}

	return &entity.PaymentMethod{
		ID:     data.ID,
		UserID: data.UserID,
		Type:   entity.PaymentType(data.Type),
	}
}
