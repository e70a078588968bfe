package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"stockroom/config"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	mockSvc "stockroom/internal/mocks/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDigest = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

type authServiceFixture struct {
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokenSvc *mockSvc.MockTokenService
	mailer   *mockSvc.MockMailer
	service  usecase.AuthUsecase
}

func newAuthServiceFixture(t *testing.T) *authServiceFixture {
	t.Helper()

	f := &authServiceFixture{
		userRepo: new(mockRepo.MockUserRepository),
		hasher:   new(mockSvc.MockPasswordHasher),
		tokenSvc: new(mockSvc.MockTokenService),
		mailer:   new(mockSvc.MockMailer),
	}

	cfg := &config.Config{}
	cfg.Frontend.BaseURL = "https://app.example.com"

	f.service = NewAuthService(AuthServiceParams{
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenSvc,
		Mailer:       f.mailer,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func (f *authServiceFixture) assertExpectations(t *testing.T) {
	t.Helper()

	f.userRepo.AssertExpectations(t)
	f.hasher.AssertExpectations(t)
	f.tokenSvc.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.On("Hash", "password").Return(testDigest)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "new@example.com", user.Email)
			assert.Equal(t, testDigest, user.Password)
			user.ID = userID
		}).
		Return(nil)
	f.tokenSvc.On("Issue", userID).Return("signed-token", nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	f.assertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.userRepo.On("FindByEmail", ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.userRepo.On("FindByEmail", ctx, "new@example.com").
		Return(nil, errors.New("connection refused"))

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByEmail", ctx, "user@example.com").
		Return(&entity.User{ID: userID, Email: "user@example.com", Password: testDigest}, nil)
	f.hasher.On("Matches", "password", testDigest).Return(true)
	f.tokenSvc.On("Issue", userID).Return("signed-token", nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	f.assertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.userRepo.On("FindByEmail", ctx, "user@example.com").
		Return(&entity.User{ID: uuid.New(), Password: testDigest}, nil)
	f.hasher.On("Matches", "wrong", testDigest).Return(false)

	_, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	f.tokenSvc.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password",
	})

	// A missing account answers exactly like a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_VerifySession_Success(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Name: "User", Email: "user@example.com"}

	f.userRepo.On("FindByID", ctx, userID).Return(stored, nil)

	user, err := f.service.VerifySession(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_VerifySession_UnknownSubject(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.VerifySession(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_UpdateProfile_SamePasswordRejected(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Password: testDigest}, nil)
	f.hasher.On("Hash", "password").Return(testDigest)

	err := f.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Name:     "User",
		Email:    "user@example.com",
		Password: "password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSamePassword)
	f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_UpdateProfile_AbsentPasswordKeepsDigest(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Password: testDigest}, nil)
	f.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, testDigest, user.Password)
			assert.Equal(t, "Renamed", user.Name)
			assert.Equal(t, "renamed@example.com", user.Email)
		}).
		Return(nil)

	err := f.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Name:  "Renamed",
		Email: "renamed@example.com",
	})
	require.NoError(t, err)
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	f.assertExpectations(t)
}

func TestAuthService_UpdateProfile_NewPassword(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	newDigest := "a" + testDigest[1:]

	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Password: testDigest}, nil)
	f.hasher.On("Hash", "changed").Return(newDigest)
	f.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			assert.Equal(t, newDigest, args.Get(1).(*entity.User).Password)
		}).
		Return(nil)

	err := f.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Name:     "User",
		Email:    "user@example.com",
		Password: "changed",
	})
	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByEmail", ctx, "user@example.com").
		Return(&entity.User{ID: userID, Email: "user@example.com"}, nil)
	f.tokenSvc.On("Issue", userID).Return("reset-token", nil)
	f.mailer.On("SendPasswordReset", ctx, "user@example.com",
		"https://app.example.com/verify?token=reset-token").Return(nil)

	err := f.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "user@example.com"})
	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := f.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "nobody@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "user not found with that email", appErr.Message())
}

func TestAuthService_ForgotPassword_MailFailure(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByEmail", ctx, "user@example.com").
		Return(&entity.User{ID: userID, Email: "user@example.com"}, nil)
	f.tokenSvc.On("Issue", userID).Return("reset-token", nil)
	f.mailer.On("SendPasswordReset", ctx, "user@example.com", mock.AnythingOfType("string")).
		Return(errors.New("relay unreachable"))

	err := f.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "user@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, domainerrors.ErrMailDelivery.Message(), appErr.Message())
	assert.Equal(t, "relay unreachable", appErr.Details())
}
