// Package usecase contains the application-specific business rules.
package usecase

import "context"

// AuthUsecase defines the interface for the authentication flows: sign-up,
// sign-in and OTP-based account activation.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// ActivateAccount verifies the submitted code against the stored hash and
	// flips the account to ACTIVE. The caller is authenticated by an OTP token.
	ActivateAccount(ctx context.Context, userID int64, otp string) error

	// ResendActivateOTP issues, stores and emails a fresh activation code.
	ResendActivateOTP(ctx context.Context, userID int64) error
}

// --- Input / Output DTOs ---

// SignUpInput defines the data required to register an account.
type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// SignUpOutput is the created profile plus the OTP-audience token the client
// uses for the activation endpoints.
type SignUpOutput struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
	Token  string `json:"token"`
}

// SignInInput defines the credentials for sign-in.
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInOutput carries the session-audience token.
type SignInOutput struct {
	Token string `json:"token"`
}
