package postgres

import (
	"context"
	"fmt"

	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sortableProductColumns is the allow-list for the sortBy query parameter.
// Anything outside it is ignored rather than interpolated into SQL.
var sortableProductColumns = map[string]string{
	"name":      "name",
	"price":     "price",
	"stock":     "stock",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"id":        "id",
}

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns products matching the filter, with their images preloaded.
// Filters compose independently; sorting only applies when both SortBy and
// OrderBy are present and valid.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Preload("Images")

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	if filter.SortBy != "" && filter.OrderBy != "" {
		if column, ok := sortableProductColumns[filter.SortBy]; ok {
			direction := "ASC"
			if filter.OrderBy == "desc" || filter.OrderBy == "DESC" {
				direction = "DESC"
			}
			query = query.Order(fmt.Sprintf("%s %s", column, direction))
		}
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a product by its unique ID, with images.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images").
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByName retrieves a product by its unique name.
func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product together with its image rows.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.Conflict(domainerrors.BodyField(product.Name, domainerrors.MsgNameRegistered, "name")).
				WrapMessage("product name unique constraint violated")
		}
		// A referenced row vanished between the service's checks and the insert.
		if isForeignKeyConstraintViolation(err) {
			if violationMentions(err, "categor") {
				return domainerrors.Validation(domainerrors.BodyField(product.CategoryID, domainerrors.MsgCategoryNotExist, "categoryId")).
					WrapMessage("product category foreign key violated")
			}

			return domainerrors.Validation(domainerrors.BodyField(product.ProductUnitID, domainerrors.MsgProductUnitNotExist, "productUnitId")).
				WrapMessage("product unit foreign key violated")
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, imageM := range productM.Images {
		if i < len(product.Images) {
			product.Images[i].ID = imageM.ID
			product.Images[i].ProductID = imageM.ProductID
		}
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]*entity.Image, 0, len(data.Images))
	for _, imageM := range data.Images {
		images = append(images, toImageDomain(imageM))
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Price:         data.Price,
		Stock:         data.Stock,
		Description:   data.Description,
		CategoryID:    data.CategoryID,
		ProductUnitID: data.ProductUnitID,
		Images:        images,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := make([]*model.ImageModel, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, &model.ImageModel{
			ID:  image.ID,
			URL: image.URL,
		})
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Price:         data.Price,
		Stock:         data.Stock,
		Description:   data.Description,
		CategoryID:    data.CategoryID,
		ProductUnitID: data.ProductUnitID,
		Images:        images,
	}
}
