// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	AvatarURL string `json:"avatarUrl"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput carries the mutable profile fields. An empty Password
// means "keep the current one"; the no-op password check only runs when a
// new password is actually submitted.
type UpdateProfileInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
	Password  string `json:"password"`
}

// ForgotPasswordInput identifies the account to send a reset link to.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Output DTOs ---

// TokenOutput returns a freshly issued session token.
type TokenOutput struct {
	Token string
}

// AuthUsecase defines the interface for identity and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	VerifySession(ctx context.Context, subjectID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, subjectID uuid.UUID, input *UpdateProfileInput) error
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
}
