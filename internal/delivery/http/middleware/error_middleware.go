package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ideadrop/config"
	domainerrors "ideadrop/internal/domain/errors"
)

// ErrorBody is the single JSON shape every failed request surfaces.
// The stack is only populated outside production.
type ErrorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// ErrorMiddleware funnels every error raised by handlers and
// middleware into one response-formatting boundary.
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status code.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, appErr.HTTPCode(), appErr.Message(), err)

		return
	}

	// Echo's own errors (unmatched route, method not allowed).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		m.write(c, httpErr.Code, message, err)

		return
	}

	// Anything else is an internal error; log it with full context.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, "Internal server error", err)
}

func (m *ErrorMiddleware) write(c echo.Context, statusCode int, message string, err error) {
	body := ErrorBody{Message: message}
	if !m.production {
		// %+v renders the pkg/errors stack trace when present.
		body.Stack = fmt.Sprintf("%+v", err)
	}

	if writeErr := c.JSON(statusCode, body); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
