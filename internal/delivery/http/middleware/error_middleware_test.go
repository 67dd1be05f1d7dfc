package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"ideadrop/config"
	domainerrors "ideadrop/internal/domain/errors"
)

func newErrorMiddleware(env string) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Env = env
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewErrorMiddleware(logger, cfg)
}

func invokeErrorHandler(m *ErrorMiddleware, err error) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ideas/some-id", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppErrorStatusAndMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        domainerrors.ErrValidation.WrapMessage("Please include all fields"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Please include all fields",
		},
		{
			name:       "invalid credentials",
			err:        domainerrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid credentials",
		},
		{
			name:       "forbidden",
			err:        domainerrors.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "not found",
			err:        domainerrors.ErrNotFound.WrapMessage("Idea not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   "Idea not found",
		},
		{
			name:       "wrapped by caller",
			err:        errors.WithStack(domainerrors.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
		},
	}

	m := newErrorMiddleware("production")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := invokeErrorHandler(m, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newErrorMiddleware("production")

	rec := invokeErrorHandler(m, echo.NewHTTPError(http.StatusMethodNotAllowed))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestErrorMiddleware_UnknownErrorIs500(t *testing.T) {
	m := newErrorMiddleware("production")

	rec := invokeErrorHandler(m, errors.New("database exploded"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	// The raw cause must never leak to clients.
	assert.NotContains(t, rec.Body.String(), "database exploded")
}

func TestErrorMiddleware_StackOnlyOutsideProduction(t *testing.T) {
	err := domainerrors.ErrNotFound.WrapMessage("Idea not found")

	dev := invokeErrorHandler(newErrorMiddleware("development"), err)
	assert.Contains(t, dev.Body.String(), `"stack"`)

	prod := invokeErrorHandler(newErrorMiddleware("production"), err)
	assert.NotContains(t, prod.Body.String(), `"stack"`)
}
