// Package service defines interfaces for core, stateless domain logic that
// does not naturally live on a single entity.
package service

// PasswordHasher hashes and verifies secrets with a salted one-way hash.
// It covers both account passwords and the emailed activation codes, which
// are stored hashed for the same reason passwords are.
type PasswordHasher interface {
	// Hash generates a salted hash from the plaintext secret.
	Hash(password string) (string, error)

	// Check reports whether the plaintext matches the stored hash.
	Check(password, hash string) bool
}
