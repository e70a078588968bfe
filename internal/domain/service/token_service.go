package service

import "github.com/google/uuid"

// TokenService defines the interface for issuing and verifying session tokens.
// A token is a signed claim binding a single subject identifier. Tokens are
// never persisted and never revoked server-side; verification is a pure
// transform over the secret and the claim.
type TokenService interface {
	// Issue creates a signed token asserting the given subject.
	Issue(subjectID uuid.UUID) (string, error)

	// Verify checks a token's signature and shape and returns the subject
	// it asserts. Any malformed, unsigned or tampered token fails with
	// domain errors.ErrInvalidToken; the failure is never fatal to the
	// process, each call site turns it into a single-request rejection.
	Verify(token string) (uuid.UUID, error)
}
