// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vinmart/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by id, including phone, avatar and settings.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves the user owning the given phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// Create persists a new user together with its phone and settings rows.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity and its associations.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// UpdateStatus flips the account lifecycle status.
	UpdateStatus(ctx context.Context, id int64, status entity.UserStatus) error

	// SaveAvatar creates or replaces the avatar image row and returns it.
	SaveAvatar(ctx context.Context, userID int64, url string) (*entity.Image, error)

	// UpdateSetting persists the notification toggles for a user.
	UpdateSetting(ctx context.Context, setting *entity.UserSetting) error
}
