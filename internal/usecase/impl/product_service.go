package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "vinmart/internal/delivery/context"
	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/usecase"

	"github.com/pkg/errors"
)

const defaultProductImageCount = 2

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns products matching the optional filters. A limit caps
// the page size on its own; the offset additionally needs a page. Sorting
// passes through only when both sortBy and orderBy are present.
func (srv *productService) ListProducts(ctx context.Context, query *usecase.ListProductsQuery) ([]*entity.Product, error) {
	filter := repository.ProductFilter{
		Search:     query.Search,
		CategoryID: query.CategoryID,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		SortBy:     query.SortBy,
		OrderBy:    query.OrderBy,
	}
	if query.Limit != nil {
		filter.Limit = *query.Limit
		if query.Page != nil {
			filter.Offset = *query.Limit * (*query.Page - 1)
		}
	}

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct retrieves a single product. A missing id answers 404 with an
// empty body, matching what clients expect from this endpoint.
func (srv *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Renders as 404 with an empty body.
				return domainerrors.NewFieldErrors(http.StatusNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct creates a product with placeholder images. Duplicate names are
// a conflict; missing category and unit references are collected into a single
// validation answer instead of failing on the first.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Debug("Creating product", "name", input.Name)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := productRepo.FindByName(ctx, input.Name); err == nil {
			return domainerrors.Conflict(domainerrors.BodyField(input.Name, domainerrors.MsgNameRegistered, "name"))
		} else if !errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(err, "failed to check product name")
		}

		missing := domainerrors.Validation()
		if _, err := repoFactory.CategoryRepo().FindByID(ctx, input.CategoryID); err != nil {
			if !errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(err, "failed to check category")
			}
			missing.Append(domainerrors.BodyField(input.CategoryID, domainerrors.MsgCategoryNotExist, "categoryId"))
		}
		if _, err := repoFactory.ProductUnitRepo().FindByID(ctx, input.ProductUnitID); err != nil {
			if !errors.Is(err, repository.ErrProductUnitNotFound) {
				return errors.Wrap(err, "failed to check product unit")
			}
			missing.Append(domainerrors.BodyField(input.ProductUnitID, domainerrors.MsgProductUnitNotExist, "productUnitId"))
		}
		if missing.HasFields() {
			return missing
		}

		images := make([]*entity.Image, 0, defaultProductImageCount)
		for range defaultProductImageCount {
			images = append(images, &entity.Image{URL: entity.PlaceholderImageURL})
		}

		product = &entity.Product{
			Name:          input.Name,
			Price:         input.Price,
			Stock:         input.Stock,
			Description:   input.Description,
			CategoryID:    input.CategoryID,
			ProductUnitID: input.ProductUnitID,
			Images:        images,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListReviews returns the reviews of an existing product, enriched with each
// author's name and avatar.
func (srv *productService) ListReviews(ctx context.Context, productID int64) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireProduct(ctx, repoFactory, productID); err != nil {
			return err
		}

		found, err := repoFactory.ReviewRepo().ListByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// CreateReview creates a review on an existing product and enriches the
// response with the author's name and avatar.
func (srv *productService) CreateReview(ctx context.Context, userID, productID int64, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Debug("Creating review", "userID", userID, "productID", productID)

	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireProduct(ctx, repoFactory, productID); err != nil {
			return err
		}

		author, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find review author")
		}

		review = &entity.Review{
			ProductID:   productID,
			UserID:      userID,
			Rating:      input.Rating,
			Description: input.Description,
			UserName:    author.Name,
		}
		if author.Image != nil {
			review.UserImage = author.Image.URL
		}

		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// requireProduct answers a bare 404 when the parent product is gone. Renders
// as an empty body.
func (srv *productService) requireProduct(ctx context.Context, repoFactory repository.RepositoryFactory, productID int64) error {
	if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.NewFieldErrors(http.StatusNotFound)
		}

		return errors.Wrap(err, "failed to check product")
	}

	return nil
}
