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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFavoriteItems returns the caller's favorites with product details.
func (srv *favoriteService) ListFavoriteItems(ctx context.Context, userID int64) ([]*entity.FavoriteItem, error) {
	var items []*entity.FavoriteItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.FavoriteItemRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list favorite items")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// AddFavoriteItem marks an existing product as a favorite, once per product.
func (srv *favoriteService) AddFavoriteItem(ctx context.Context, userID, productID int64) (*entity.FavoriteItem, error) {
	srv.log(ctx).Debug("Adding favorite item", "userID", userID, "productID", productID)

	var item *entity.FavoriteItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.NotFound(domainerrors.BodyField(productID, domainerrors.MsgProductNotExist, "productId"))
			}

			return errors.Wrap(err, "failed to find product")
		}

		favoriteRepo := repoFactory.FavoriteItemRepo()
		if _, err := favoriteRepo.FindByProduct(ctx, userID, productID); err == nil {
			return domainerrors.Conflict(domainerrors.BodyField(productID, domainerrors.MsgProductSelected, "productId"))
		} else if !errors.Is(err, repository.ErrFavoriteItemNotFound) {
			return errors.Wrap(err, "failed to check favorites for product")
		}

		item = &entity.FavoriteItem{
			UserID:    userID,
			ProductID: productID,
			Product:   product,
		}
		if err := favoriteRepo.Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create favorite item")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteFavoriteItem removes a favorite the caller owns.
func (srv *favoriteService) DeleteFavoriteItem(ctx context.Context, userID, favoriteItemID int64) error {
	srv.log(ctx).Debug("Deleting favorite item", "userID", userID, "favoriteItemID", favoriteItemID)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.FavoriteItemRepo().Delete(ctx, userID, favoriteItemID); err != nil {
			if errors.Is(err, repository.ErrFavoriteItemNotFound) {
				return domainerrors.NotFoundItem("favoriteItemId", favoriteItemID)
			}

			return errors.Wrap(err, "failed to delete favorite item")
		}

		return nil
	})
}
