package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/validator"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	mockSvc "stockroom/internal/mocks/service"
	mockUsecase "stockroom/internal/mocks/usecase"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type authHandlerFixture struct {
	echo     *echo.Echo
	uc       *mockUsecase.MockAuthUsecase
	tokenSvc *mockSvc.MockTokenService
}

func newAuthHandlerFixture(t *testing.T) *authHandlerFixture {
	t.Helper()

	f := &authHandlerFixture{
		echo:     echo.New(),
		uc:       new(mockUsecase.MockAuthUsecase),
		tokenSvc: new(mockSvc.MockTokenService),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(f.uc, f.tokenSvc, logger)
	authMiddleware := middleware.NewAuthMiddleware(f.tokenSvc)

	f.echo.POST("/register", h.Register)
	f.echo.POST("/login", h.Login)
	f.echo.GET("/verify-session", h.VerifySession)
	f.echo.POST("/forgot-password", h.ForgotPassword)
	f.echo.GET("/verify-link", h.VerifyLink)
	f.echo.POST("/update-profile", h.UpdateProfile, authMiddleware.RequireToken)

	return f
}

func (f *authHandlerFixture) do(method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.uc.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.TokenOutput{Token: "signed-token"}, nil)

	rec := f.do(http.MethodPost, "/register",
		`{"name":"User","email":"user@example.com","password":"password"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"user successfully created","token":"signed-token"}`, rec.Body.String())
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := f.do(http.MethodPost, "/register",
		`{"name":"User","email":"user@example.com","password":"password"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"user already exists"}`, rec.Body.String())
}

func TestAuthHandler_Register_MissingEmail(t *testing.T) {
	f := newAuthHandlerFixture(t)

	rec := f.do(http.MethodPost, "/register", `{"name":"User","password":"password"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.TokenOutput{Token: "signed-token"}, nil)

	rec := f.do(http.MethodPost, "/login",
		`{"email":"user@example.com","password":"password"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"user successfully logged in","token":"signed-token"}`, rec.Body.String())
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.do(http.MethodPost, "/login",
		`{"email":"user@example.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"invalid email or password"}`, rec.Body.String())
}

func TestAuthHandler_VerifySession_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)
	userID := uuid.New()

	f.tokenSvc.On("Verify", "valid-token").Return(userID, nil)
	f.uc.On("VerifySession", mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "User", Email: "user@example.com"}, nil)

	rec := f.do(http.MethodGet, "/verify-session?token=valid-token", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"user@example.com"`)

	// The digest never leaves the service.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_VerifySession_BadToken(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.tokenSvc.On("Verify", "garbage").Return(uuid.Nil, domainerrors.ErrInvalidToken)

	rec := f.do(http.MethodGet, "/verify-session?token=garbage", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"invalid token!"}`, rec.Body.String())
	f.uc.AssertNotCalled(t, "VerifySession", mock.Anything, mock.Anything)
}

func TestAuthHandler_UpdateProfile_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)
	userID := uuid.New()

	f.tokenSvc.On("Verify", "valid-token").Return(userID, nil)
	f.uc.On("UpdateProfile", mock.Anything, userID, mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Return(nil)

	rec := f.do(http.MethodPost, "/update-profile",
		`{"name":"Renamed","email":"renamed@example.com"}`,
		map[string]string{"token": "valid-token"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"user profile updated successfully!"}`, rec.Body.String())
}

func TestAuthHandler_UpdateProfile_MissingToken(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.tokenSvc.On("Verify", "").Return(uuid.Nil, domainerrors.ErrInvalidToken)

	rec := f.do(http.MethodPost, "/update-profile", `{"name":"Renamed"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"invalid token!"}`, rec.Body.String())
	f.uc.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_UpdateProfile_SamePassword(t *testing.T) {
	f := newAuthHandlerFixture(t)
	userID := uuid.New()

	f.tokenSvc.On("Verify", "valid-token").Return(userID, nil)
	f.uc.On("UpdateProfile", mock.Anything, userID, mock.Anything).
		Return(domainerrors.ErrSamePassword)

	rec := f.do(http.MethodPost, "/update-profile",
		`{"name":"User","email":"user@example.com","password":"password"}`,
		map[string]string{"token": "valid-token"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"new password can't be same as previous one!"}`, rec.Body.String())
}

func TestAuthHandler_ForgotPassword_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.uc.On("ForgotPassword", mock.Anything, mock.AnythingOfType("*usecase.ForgotPasswordInput")).
		Return(nil)

	rec := f.do(http.MethodPost, "/forgot-password", `{"email":"user@example.com"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"link sent to email"}`, rec.Body.String())
}

func TestAuthHandler_ForgotPassword_MailFailure(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.uc.On("ForgotPassword", mock.Anything, mock.Anything).
		Return(domainerrors.ErrMailDelivery)

	rec := f.do(http.MethodPost, "/forgot-password", `{"email":"user@example.com"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"well, thats sad! Error in sending email"}`, rec.Body.String())
}

func TestAuthHandler_VerifyLink(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.tokenSvc.On("Verify", "valid-token").Return(uuid.New(), nil)
	f.tokenSvc.On("Verify", "expired").Return(uuid.Nil, domainerrors.ErrInvalidToken)

	rec := f.do(http.MethodGet, "/verify-link?token=valid-token", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"valid link"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/verify-link?token=expired", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"invalid link"}`, rec.Body.String())
}
