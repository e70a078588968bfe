// Package middleware contains the HTTP middlewares of the API.
package middleware

import (
	"net/http"

	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// keySubjectID is the echo context key the verified subject is stored under.
const keySubjectID = "subjectID"

// AuthMiddleware is the authorization gate for mutating endpoints. The
// client sends the session token as the raw value of a "token" header, not
// as a standard bearer Authorization header.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// RequireToken verifies the token header and stores the resolved subject in
// the request context. One Verify call, no enrichment, no caching: a request
// is either Authorized(subject) or Rejected, and rejection performs no
// handler or persistence work.
func (m *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get("token")

		subjectID, err := m.tokenSvc.Verify(token)
		if err != nil {
			return response.Message(c, http.StatusUnauthorized, domainerrors.ErrInvalidToken.Message())
		}

		c.Set(keySubjectID, subjectID)

		return next(c)
	}
}

// SubjectID returns the verified subject stored by RequireToken.
// Endpoints that only need existence-of-a-valid-token ignore it.
func SubjectID(c echo.Context) (uuid.UUID, bool) {
	subjectID, ok := c.Get(keySubjectID).(uuid.UUID)

	return subjectID, ok
}
