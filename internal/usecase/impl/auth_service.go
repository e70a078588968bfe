// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"stockroom/config"
	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo        repository.UserRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	mailer          service.Mailer
	frontendBaseURL string
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:        params.UserRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		mailer:          params.Mailer,
		frontendBaseURL: params.Config.Frontend.BaseURL,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account and issues its first session token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Uniqueness is checked by lookup; the unique index on users.email is
	// only a backstop for concurrent registrations.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	user := &entity.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  srv.hasher.Hash(input.Password),
		AvatarURL: input.AvatarURL,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{Token: token}, nil
}

// Login checks the credentials and issues a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// A missing account and a wrong password answer identically.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Matches(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{Token: token}, nil
}

// VerifySession resolves the subject of an already-verified token to its user record.
func (srv *authService) VerifySession(ctx context.Context, subjectID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}

// UpdateProfile overwrites the mutable profile fields. The password digest
// is recomputed only when a new password is submitted, and a new password
// identical to the stored one is rejected.
func (srv *authService) UpdateProfile(ctx context.Context, subjectID uuid.UUID, input *usecase.UpdateProfileInput) error {
	user, err := srv.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for profile update")
	}

	if input.Password != "" {
		newDigest := srv.hasher.Hash(input.Password)
		if newDigest == user.Password {
			return domainerrors.ErrSamePassword
		}
		user.Password = newDigest
	}

	user.Name = input.Name
	user.Email = input.Email
	user.AvatarURL = input.AvatarURL

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", subjectID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", subjectID))

	return nil
}

// ForgotPassword mints a reset token and emails the reset link. The token
// has the same shape as a session token.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WithMessage("user not found with that email")
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	link := fmt.Sprintf("%s/verify?token=%s", srv.frontendBaseURL, token)
	if err := srv.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		srv.log(ctx).Error("Failed to send reset mail", slog.String("email", user.Email), slog.Any("error", err))

		return domainerrors.ErrMailDelivery.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Reset link sent", slog.Any("userID", user.ID))

	return nil
}
