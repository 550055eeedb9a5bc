package postgres

import (
	"context"

	"vinmart/internal/domain/entity"
	"vinmart/internal/domain/repository"
	"vinmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// oneTimeCodeRepository implements the domain.OneTimeCodeRepository interface using GORM.
type oneTimeCodeRepository struct {
	db *gorm.DB
}

// NewOneTimeCodeRepository is the constructor for oneTimeCodeRepository.
func NewOneTimeCodeRepository(db *gorm.DB) repository.OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db}
}

// Upsert stores the code for the user, replacing any previous one. The unique
// index on user_id makes the conflict target; a resend overwrites in place.
func (repo *oneTimeCodeRepository) Upsert(ctx context.Context, code *entity.OneTimeCode) error {
	codeM := model.OneTimeCodeModel{
		UserID: code.UserID,
		Code:   code.Code,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "updated_at"}),
		}).
		Create(&codeM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert one-time code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt
	code.UpdatedAt = codeM.UpdatedAt

	return nil
}

// FindByUserID returns the current code for the user.
func (repo *oneTimeCodeRepository) FindByUserID(ctx context.Context, userID int64) (*entity.OneTimeCode, error) {
	var codeM model.OneTimeCodeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find one-time code by user id")
	}

	return &entity.OneTimeCode{
		ID:        codeM.ID,
		UserID:    codeM.UserID,
		Code:      codeM.Code,
		CreatedAt: codeM.CreatedAt,
		UpdatedAt: codeM.UpdatedAt,
	}, nil
}
