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

// productUnitRepository implements the domain.ProductUnitRepository interface using GORM.
type productUnitRepository struct {
	db *gorm.DB
}

// NewProductUnitRepository is the constructor for productUnitRepository.
func NewProductUnitRepository(db *gorm.DB) repository.ProductUnitRepository {
	return &productUnitRepository{db: db}
}

// List returns every product unit, oldest first.
func (repo *productUnitRepository) List(ctx context.Context) ([]*entity.ProductUnit, error) {
	var unitModels []*model.ProductUnitModel
	err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&unitModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product units")
	}

	units := make([]*entity.ProductUnit, 0, len(unitModels))
	for _, unitM := range unitModels {
		units = append(units, toProductUnitDomain(unitM))
	}

	return units, nil
}

// FindByID retrieves a product unit by its unique ID.
func (repo *productUnitRepository) FindByID(ctx context.Context, id int64) (*entity.ProductUnit, error) {
	var unitM model.ProductUnitModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&unitM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find product unit by id")
	}

	return toProductUnitDomain(&unitM), nil
}

// FindByName retrieves a product unit by its unique name.
func (repo *productUnitRepository) FindByName(ctx context.Context, name string) (*entity.ProductUnit, error) {
	var unitM model.ProductUnitModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&unitM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find product unit by name")
	}

	return toProductUnitDomain(&unitM), nil
}

// Create persists a new product unit.
func (repo *productUnitRepository) Create(ctx context.Context, unit *entity.ProductUnit) error {
	unitM := &model.ProductUnitModel{Name: unit.Name}

	if err := repo.db.WithContext(ctx).Create(unitM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.Conflict(domainerrors.BodyField(unit.Name, domainerrors.MsgNameRegistered, "name")).
				WrapMessage("product unit name unique constraint violated")
		}

		return errors.Wrap(err, "failed to create product unit")
	}

	unit.ID = unitM.ID
	unit.CreatedAt = unitM.CreatedAt
	unit.UpdatedAt = unitM.UpdatedAt

	return nil
}

func toProductUnitDomain(data *model.ProductUnitModel) *entity.ProductUnit {
	if data == nil {
		return nil
	}

	return &entity.ProductUnit{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
