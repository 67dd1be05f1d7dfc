// Package response holds the small set of response shapes the API
// emits. Success bodies are the payloads themselves; errors are
// formatted by the error middleware.
package response

import (
	"github.com/labstack/echo/v4"

	"ideadrop/internal/domain/entity"
)

// Session is the body returned by register, login and refresh.
type Session struct {
	AccessToken string             `json:"accessToken"`
	User        *entity.PublicUser `json:"user"`
}

// MessageBody wraps a human-readable confirmation message.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes a payload with the given status code.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a `{message}` confirmation body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
