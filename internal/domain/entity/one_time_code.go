package entity

import "time"

// OneTimeCode stores the bcrypt hash of the activation code emailed to a user.
// Each resend replaces the previous row, so the latest code per user is the
// only one that verifies.
type OneTimeCode struct {
	ID        int64
	UserID    int64
	Code      string // bcrypt hash of the 6-digit code
	CreatedAt time.Time
	UpdatedAt time.Time
}
