package repository

import (
	"context"
	"errors"

	"vinmart/internal/domain/entity"
)

// ErrAddressNotFound is returned when an address does not exist for the owner.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines owner-scoped persistence for delivery addresses.
// Every lookup is scoped to the owning user so one account can never touch
// another account's rows.
type AddressRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*entity.Address, error)
	FindByID(ctx context.Context, userID, id int64) (*entity.Address, error)
	Create(ctx context.Context, address *entity.Address) error
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, userID, id int64) error
}
