package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"vinmart/internal/domain/service"
)

// otpGenerator produces 6-digit activation codes from crypto/rand.
type otpGenerator struct{}

// NewOTPGenerator is the constructor for otpGenerator.
func NewOTPGenerator() service.CodeGenerator {
	return &otpGenerator{}
}

// Generate returns a code in [100000, 999999] so it always has six digits.
func (g *otpGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate one-time code")
	}

	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
