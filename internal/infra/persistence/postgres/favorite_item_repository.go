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

// favoriteItemRepository implements the domain.FavoriteItemRepository interface using GORM.
type favoriteItemRepository struct {
	db *gorm.DB
}

// NewFavoriteItemRepository is the constructor for favoriteItemRepository.
func NewFavoriteItemRepository(db *gorm.DB) repository.FavoriteItemRepository {
	return &favoriteItemRepository{db: db}
}

// ListByUser returns the user's favorites with products and images preloaded.
func (repo *favoriteItemRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.FavoriteItem, error) {
	var itemModels []*model.FavoriteItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite items by user")
	}

	items := make([]*entity.FavoriteItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toFavoriteItemDomain(itemM))
	}

	return items, nil
}

// FindByID retrieves a favorite by id, scoped to the owning user.
func (repo *favoriteItemRepository) FindByID(ctx context.Context, userID, id int64) (*entity.FavoriteItem, error) {
	var itemM model.FavoriteItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite item by id")
	}

	return toFavoriteItemDomain(&itemM), nil
}

// FindByProduct retrieves the user's favorite for a product, if any.
func (repo *favoriteItemRepository) FindByProduct(ctx context.Context, userID, productID int64) (*entity.FavoriteItem, error) {
	var itemM model.FavoriteItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite item by product")
	}

	return toFavoriteItemDomain(&itemM), nil
}

// Create persists a new favorite.
func (repo *favoriteItemRepository) Create(ctx context.Context, item *entity.FavoriteItem) error {
	itemM := &model.FavoriteItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.Conflict(domainerrors.BodyField(item.ProductID, domainerrors.MsgProductSelected, "productId")).
				WrapMessage("favorite item unique constraint violated")
		}
		// The product was deleted between the service's check and the insert.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NotFound(domainerrors.BodyField(item.ProductID, domainerrors.MsgProductNotExist, "productId")).
				WrapMessage("favorite item product foreign key violated")
		}

		return errors.Wrap(err, "failed to create favorite item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes a favorite owned by the user.
func (repo *favoriteItemRepository) Delete(ctx context.Context, userID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.FavoriteItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteItemNotFound
	}

	return nil
}

func toFavoriteItemDomain(data *model.FavoriteItemModel) *entity.FavoriteItem {
	if data == nil {
		return nil
	}

	return &entity.FavoriteItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
