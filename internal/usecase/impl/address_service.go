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

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the caller's delivery addresses.
func (srv *addressService) ListAddresses(ctx context.Context, userID int64) ([]*entity.Address, error) {
	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		addresses = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

// CreateAddress persists a new delivery address for the caller.
func (srv *addressService) CreateAddress(ctx context.Context, userID int64, input *usecase.AddressInput) (*entity.Address, error) {
	srv.log(ctx).Debug("Creating address", "userID", userID)

	address := addressFromInput(userID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// UpdateAddress overwrites all fields of an address the caller owns. A stale
// id answers the uniform deleted-item error.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID int64, input *usecase.AddressInput) (*entity.Address, error) {
	srv.log(ctx).Debug("Updating address", "userID", userID, "addressID", addressID)

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		existing, err := addressRepo.FindByID(ctx, userID, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.NotFoundItem("addressId", addressID)
			}

			return errors.Wrap(err, "failed to find address")
		}

		address = addressFromInput(userID, input)
		address.ID = existing.ID
		address.CreatedAt = existing.CreatedAt

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// DeleteAddress removes an address the caller owns.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	srv.log(ctx).Debug("Deleting address", "userID", userID, "addressID", addressID)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AddressRepo().Delete(ctx, userID, addressID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.NotFoundItem("addressId", addressID)
			}

			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
}

func addressFromInput(userID int64, input *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		UserID:        userID,
		RecipientName: input.RecipientName,
		Address:       input.Address,
		City:          input.City,
		ZipCode:       input.ZipCode,
		Country:       input.Country,
		Phone:         input.Phone,
		Default:       input.Default,
	}
}
