// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vinmart/config"
	"vinmart/internal/domain/service"
)

const (
	defaultSessionTTL = time.Hour * 24 * 7
	defaultOTPTTL     = time.Minute * 30
)

// ErrInvalidToken is returned for malformed, expired or wrong-audience tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Session and OTP tokens are signed with independent secrets, so a token
// minted for one audience never verifies under the other.
type jwtService struct {
	sessionSecret string
	otpSecret     string
	sessionTTL    time.Duration
	otpTTL        time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session.Secret == "" || cfg.SecretKey.OTP.Secret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	sessionTTL := cfg.SecretKey.Session.ExpiresIn
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	otpTTL := cfg.SecretKey.OTP.ExpiresIn
	if otpTTL <= 0 {
		otpTTL = defaultOTPTTL
	}

	return &jwtService{
		sessionSecret: cfg.SecretKey.Session.Secret,
		otpSecret:     cfg.SecretKey.OTP.Secret,
		sessionTTL:    sessionTTL,
		otpTTL:        otpTTL,
	}, nil
}

// GenerateSessionToken creates a token for an activated account.
func (s *jwtService) GenerateSessionToken(userID int64) (string, error) {
	return s.generateToken(userID, s.sessionTTL, s.sessionSecret)
}

// GenerateOTPToken creates a token only accepted by the activation endpoints.
func (s *jwtService) GenerateOTPToken(userID int64) (string, error) {
	return s.generateToken(userID, s.otpTTL, s.otpSecret)
}

// ValidateSessionToken checks a token against the session secret and returns the user id.
func (s *jwtService) ValidateSessionToken(tokenString string) (int64, error) {
	return s.validateToken(tokenString, s.sessionSecret)
}

// ValidateOTPToken checks a token against the OTP secret and returns the user id.
func (s *jwtService) ValidateOTPToken(tokenString string) (int64, error) {
	return s.validateToken(tokenString, s.otpSecret)
}

// generateToken is a private helper to create a JWT with the payload claims.
func (s *jwtService) generateToken(userID int64, ttl time.Duration, secret string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,                     // Subject of the token
		"iat":    time.Now().Unix(),          // Issued At
		"exp":    time.Now().Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

func (s *jwtService) validateToken(tokenString, secret string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	// JSON numbers decode as float64.
	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return int64(userID), nil
}
