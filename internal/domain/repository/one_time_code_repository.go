package repository

import (
	"context"
	"errors"

	"vinmart/internal/domain/entity"
)

// ErrCodeNotFound is returned when no activation code exists for a user.
var ErrCodeNotFound = errors.New("one-time code not found")

// OneTimeCodeRepository persists hashed activation codes, one current row per user.
type OneTimeCodeRepository interface {
	// Upsert stores the code for the user, replacing any previous one.
	Upsert(ctx context.Context, code *entity.OneTimeCode) error

	// FindByUserID returns the current code for the user.
	FindByUserID(ctx context.Context, userID int64) (*entity.OneTimeCode, error)
}
