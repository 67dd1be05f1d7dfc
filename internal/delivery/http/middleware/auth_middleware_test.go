package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "ideadrop/internal/domain/errors"
	"ideadrop/internal/domain/service"
	mocksservice "ideadrop/internal/mocks/service"
)

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/ideas", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mocksservice.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.On("ValidateToken", "valid-token").
		Return(&service.Claims{UserID: userID}, nil)

	m := NewAuthMiddleware(tokenSvc)

	var nextCalled bool
	next := func(c echo.Context) error {
		nextCalled = true

		resolved, err := UserIDFromContext(c)
		require.NoError(t, err)
		assert.Equal(t, userID, resolved)

		return nil
	}

	c := newAuthTestContext("Bearer valid-token")
	require.NoError(t, m.Authenticate(next)(c))
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mocksservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	}

	err := m.Authenticate(next)(newAuthTestContext(""))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	tokenSvc.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mocksservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	next := func(c echo.Context) error { return nil }

	err := m.Authenticate(next)(newAuthTestContext("Basic dXNlcjpwYXNz"))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	tokenSvc.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mocksservice.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "garbage").
		Return(nil, assert.AnError)

	m := NewAuthMiddleware(tokenSvc)

	next := func(c echo.Context) error { return nil }

	err := m.Authenticate(next)(newAuthTestContext("Bearer garbage"))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserIDFromContext_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := UserIDFromContext(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
