// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stockroom/config"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string // Process-wide secret for signing session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.Session}, nil
}

// Issue creates a signed token asserting the given subject.
// The claim set carries no expiry: tokens stay verifiable until the secret
// rotates. Reset-link tokens share this shape.
func (s *jwtService) Issue(subjectID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": subjectID.String(), // Subject (who the token is for)
		"iat": time.Now().Unix(),  // Issued At
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the signature and extracts the subject identifier.
// Every failure mode collapses into the single domain ErrInvalidToken; the
// caller never needs to distinguish malformed from tampered input.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	subjectID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return subjectID, nil
}
