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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// CreateCategory creates a category with a placeholder image. Names are unique.
func (srv *categoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	srv.log(ctx).Debug("Creating category", "name", name)

	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if _, err := categoryRepo.FindByName(ctx, name); err == nil {
			return domainerrors.Conflict(domainerrors.BodyField(name, domainerrors.MsgNameRegistered, "name"))
		} else if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(err, "failed to check category name")
		}

		category = &entity.Category{
			Name:  name,
			Image: &entity.Image{URL: entity.PlaceholderImageURL},
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}
