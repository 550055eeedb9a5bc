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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCartItems returns the caller's cart with product details.
func (srv *cartService) ListCartItems(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	var items []*entity.CartItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CartItemRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart items")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// AddCartItem puts a product into the cart with quantity 1. The product must
// exist, must not already be in the cart, and must have stock.
func (srv *cartService) AddCartItem(ctx context.Context, userID, productID int64) (*entity.CartItem, error) {
	srv.log(ctx).Debug("Adding cart item", "userID", userID, "productID", productID)

	var item *entity.CartItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.NotFound(domainerrors.BodyField(productID, domainerrors.MsgProductNotExist, "productId"))
			}

			return errors.Wrap(err, "failed to find product")
		}

		cartRepo := repoFactory.CartItemRepo()
		if _, err := cartRepo.FindByProduct(ctx, userID, productID); err == nil {
			return domainerrors.Conflict(domainerrors.BodyField(productID, domainerrors.MsgProductSelected, "productId"))
		} else if !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to check cart for product")
		}

		if !product.InStock(1) {
			return domainerrors.StockExceeded("productId", productID)
		}

		item = &entity.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  1,
			Product:   product,
		}
		if err := cartRepo.Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create cart item")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateCartItem changes the quantity of a cart item the caller owns,
// re-checking the product stock.
func (srv *cartService) UpdateCartItem(ctx context.Context, userID, cartItemID int64, quantity int) (*entity.CartItem, error) {
	srv.log(ctx).Debug("Updating cart item", "userID", userID, "cartItemID", cartItemID, "quantity", quantity)

	var item *entity.CartItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartItemRepo()

		existing, err := cartRepo.FindByID(ctx, userID, cartItemID)
		if err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.NotFoundItem("cartItemId", cartItemID)
			}

			return errors.Wrap(err, "failed to find cart item")
		}

		product, err := repoFactory.ProductRepo().FindByID(ctx, existing.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}

		if !product.InStock(quantity) {
			return domainerrors.StockExceeded("quantity", quantity)
		}

		if err := cartRepo.UpdateQuantity(ctx, userID, cartItemID, quantity); err != nil {
			return errors.Wrap(err, "failed to update cart item quantity")
		}

		existing.Quantity = quantity
		existing.Product = product
		item = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteCartItem removes a cart item the caller owns.
func (srv *cartService) DeleteCartItem(ctx context.Context, userID, cartItemID int64) error {
	srv.log(ctx).Debug("Deleting cart item", "userID", userID, "cartItemID", cartItemID)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartItemRepo().Delete(ctx, userID, cartItemID); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.NotFoundItem("cartItemId", cartItemID)
			}

			return errors.Wrap(err, "failed to delete cart item")
		}

		return nil
	})
}
