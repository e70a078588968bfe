// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "stockroom/internal/domain/errors"
)

type echoValidator struct {
	validate *validatorlib.Validate
}

// New constructs the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{validate: validatorlib.New()}
}

// Validate runs struct-tag validation and maps failures to the domain
// validation error so the error middleware shapes the response.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
