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

// productUnitService implements the ProductUnitUsecase interface.
type productUnitService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductUnitService is the constructor for productUnitService.
func NewProductUnitService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUnitUsecase {
	return &productUnitService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productUnitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProductUnits returns every product unit.
func (srv *productUnitService) ListProductUnits(ctx context.Context) ([]*entity.ProductUnit, error) {
	var units []*entity.ProductUnit

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductUnitRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list product units")
		}
		units = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return units, nil
}

// CreateProductUnit creates a product unit. Names are unique.
func (srv *productUnitService) CreateProductUnit(ctx context.Context, name string) (*entity.ProductUnit, error) {
	srv.log(ctx).Debug("Creating product unit", "name", name)

	var unit *entity.ProductUnit

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		unitRepo := repoFactory.ProductUnitRepo()

		if _, err := unitRepo.FindByName(ctx, name); err == nil {
			return domainerrors.Conflict(domainerrors.BodyField(name, domainerrors.MsgNameRegistered, "name"))
		} else if !errors.Is(err, repository.ErrProductUnitNotFound) {
			return errors.Wrap(err, "failed to check product unit name")
		}

		unit = &entity.ProductUnit{Name: name}
		if err := unitRepo.Create(ctx, unit); err != nil {
			return errors.Wrap(err, "failed to create product unit")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return unit, nil
}
