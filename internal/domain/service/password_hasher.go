// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for credential digesting.
// The digest is deterministic: the same plaintext always produces the same
// digest, which is what login and the no-op password-change check rely on.
type PasswordHasher interface {
	// Hash transforms a plaintext password into a fixed-length hex digest.
	Hash(password string) string

	// Matches reports whether the plaintext hashes to the given digest.
	Matches(password, digest string) bool
}
