// Package response shapes the JSON bodies the API returns.
//
// The wire contract is deliberately plain: reads answer with the record or
// list itself, writes answer with {"message": ...} and token-minting
// operations add a "token" field. Errors are {"message": ...} as well.
package response

import "github.com/labstack/echo/v4"

// MessageResponse is the body of every write acknowledgement and error.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body of every operation that mints a session token.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// JSON writes a raw payload, used by read endpoints.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a {"message": ...} acknowledgement.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Token writes a {"message": ..., "token": ...} body.
func Token(c echo.Context, statusCode int, message, token string) error {
	return c.JSON(statusCode, TokenResponse{Message: message, Token: token})
}
