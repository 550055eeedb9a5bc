package postgres

import (
	"context"

	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartItemRepository implements the domain.CartItemRepository interface using GORM.
type cartItemRepository struct {
	db *gorm.DB
}

// NewCartItemRepository is the constructor for cartItemRepository.
func NewCartItemRepository(db *gorm.DB) repository.CartItemRepository {
	return &cartItemRepository{db: db}
}

// ListByUser returns the user's cart with products and images preloaded.
func (repo *cartItemRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items by user")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// FindByID retrieves a cart item by id, scoped to the owning user.
func (repo *cartItemRepository) FindByID(ctx context.Context, userID, id int64) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND user_id = ?", id, userID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemDomain(&itemM), nil
}

// FindByProduct retrieves the user's cart item for a product, if any.
func (repo *cartItemRepository) FindByProduct(ctx context.Context, userID, productID int64) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by product")
	}

	return toCartItemDomain(&itemM), nil
}

// Create persists a new cart item.
func (repo *cartItemRepository) Create(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		// Backstop for two adds of the same product racing past the read.
		if isUniqueConstraintViolation(err) {
			return domainerrors.Conflict(domainerrors.BodyField(item.ProductID, domainerrors.MsgProductSelected, "productId")).
				WrapMessage("cart item unique constraint violated")
		}
		// The product was deleted between the service's check and the insert.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NotFound(domainerrors.BodyField(item.ProductID, domainerrors.MsgProductNotExist, "productId")).
				WrapMessage("cart item product foreign key violated")
		}

		return errors.Wrap(err, "failed to create cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateQuantity sets the quantity of a cart item owned by the user.
func (repo *cartItemRepository) UpdateQuantity(ctx context.Context, userID, id int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Delete removes a cart item owned by the user.
func (repo *cartItemRepository) Delete(ctx context.Context, userID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
