// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserStatus models the account activation lifecycle. A freshly signed-up
// account stays in PRE_ACTIVE until the emailed one-time code is verified.
type UserStatus string

const (
	UserStatusPreActive UserStatus = "PRE_ACTIVE"
	UserStatusActive    UserStatus = "ACTIVE"
)

// DefaultUserName is assigned to accounts that sign up without a display name.
const DefaultUserName = "Vinmart's User"

// User is the core entity in the system, representing a registered customer.
// Password always holds the bcrypt hash, never the plaintext.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	Status    UserStatus
	Phone     *Phone
	Image     *Image       // Avatar image. Nil until one is uploaded.
	Setting   *UserSetting // Notification toggles, created together with the account.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the account finished OTP activation.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Phone is the contact number attached to an account.
// Phone values are unique across accounts.
type Phone struct {
	ID     int64
	UserID int64
	Phone  string
}

// UserSetting holds the per-account notification toggles.
type UserSetting struct {
	ID                        int64
	UserID                    int64
	EnableEmailNotification   bool
	EnableOrderNotification   bool
	EnableGeneralNotification bool
}

// DefaultUserSetting returns the toggles a new account starts with.
func DefaultUserSetting(userID int64) *UserSetting {
	return &UserSetting{
		UserID:                    userID,
		EnableEmailNotification:   false,
		EnableOrderNotification:   false,
		EnableGeneralNotification: true,
	}
}
