package service

// TokenAudience selects which signing secret a token is minted and verified
// under. A session token never verifies as an OTP token and vice versa.
type TokenAudience string

const (
	// AudienceSession is the full-session audience for activated accounts.
	AudienceSession TokenAudience = "session"

	// AudienceOTP is the short-lived audience handed out at sign-up, only
	// accepted by the activation endpoints.
	AudienceOTP TokenAudience = "otp"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionToken mints a token under the session secret.
	GenerateSessionToken(userID int64) (string, error)

	// GenerateOTPToken mints a token under the OTP secret.
	GenerateOTPToken(userID int64) (string, error)

	// ValidateSessionToken verifies a token against the session secret and
	// returns the embedded user id.
	ValidateSessionToken(tokenString string) (int64, error)

	// ValidateOTPToken verifies a token against the OTP secret and returns
	// the embedded user id.
	ValidateOTPToken(tokenString string) (int64, error)
}
