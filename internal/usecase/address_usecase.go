package usecase

import (
	"context"

	"vinmart/internal/domain/entity"
)

// AddressUsecase defines owner-scoped delivery address CRUD.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID int64) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, userID int64, input *AddressInput) (*entity.Address, error)

	// UpdateAddress returns the uniform stale-id error when the address is gone.
	UpdateAddress(ctx context.Context, userID, addressID int64, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID int64) error
}

// AddressInput defines the address fields accepted on create and update.
type AddressInput struct {
	RecipientName string `json:"recipientName"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       int    `json:"zipCode"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Default       bool   `json:"default"`
}
