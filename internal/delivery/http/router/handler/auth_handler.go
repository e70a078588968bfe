// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/service"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for identity and session handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.Message(c, http.StatusBadRequest, "invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, http.StatusCreated, "user successfully created", output.Token)
}

// Login handles the user login request. A successful login answers 201
// because it mints a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Message(c, http.StatusBadRequest, "invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, http.StatusCreated, "user successfully logged in", output.Token)
}

// VerifySession resolves a token carried in the query string to its user record.
func (h *AuthHandler) VerifySession(c echo.Context) error {
	subjectID, err := h.tokenSvc.Verify(c.QueryParam("token"))
	if err != nil {
		return response.Message(c, http.StatusUnauthorized, domainerrors.ErrInvalidToken.Message())
	}

	user, err := h.uc.VerifySession(c.Request().Context(), subjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, user)
}

// UpdateProfile overwrites the authenticated user's mutable profile fields.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	subjectID, ok := middleware.SubjectID(c)
	if !ok {
		return response.Message(c, http.StatusUnauthorized, domainerrors.ErrInvalidToken.Message())
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.Message(c, http.StatusBadRequest, "invalid profile input")
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), subjectID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "user profile updated successfully!")
}

// ForgotPassword mints a reset token and emails a reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.Message(c, http.StatusBadRequest, "invalid forgot password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "link sent to email")
}

// VerifyLink checks a reset token's validity without any side effect.
func (h *AuthHandler) VerifyLink(c echo.Context) error {
	if _, err := h.tokenSvc.Verify(c.QueryParam("token")); err != nil {
		return response.Message(c, http.StatusUnauthorized, domainerrors.ErrInvalidLink.Message())
	}

	return response.Message(c, http.StatusOK, "valid link")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
