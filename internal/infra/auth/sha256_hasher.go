// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"stockroom/internal/domain/service"
)

// sha256Hasher is a concrete implementation of the PasswordHasher interface.
// It is a plain unsalted SHA-256 digest: two accounts with the same password
// store the same digest. That is the stored-credential contract of this
// service and both login and the no-op password-change check depend on it,
// so it must not be swapped for a salted scheme without a migration.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash returns the lowercase hex SHA-256 digest of the plaintext.
func (h *sha256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:])
}

// Matches reports whether the plaintext hashes to the stored digest.
func (h *sha256Hasher) Matches(password, digest string) bool {
	computed := h.Hash(password)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
