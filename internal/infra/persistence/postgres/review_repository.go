package postgres

import (
	"context"
	"net/http"

	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// ListByProduct returns the reviews for a product, newest first, enriched with
// each author's display name and avatar URL.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("User.Image").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ProductID:   review.ProductID,
		UserID:      review.UserID,
		Rating:      review.Rating,
		Description: review.Description,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		// The product was deleted between the service's check and the insert;
		// answer the same bare 404 the check produces.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewFieldErrors(http.StatusNotFound).
				WrapMessage("review product foreign key violated")
		}

		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity,
// flattening the preloaded author into the enrichment fields.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:          data.ID,
		ProductID:   data.ProductID,
		UserID:      data.UserID,
		Rating:      data.Rating,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.User != nil {
		review.UserName = data.User.Name
		if data.User.Image != nil {
			review.UserImage = data.User.Image.URL
		}
	}

	return review
}
