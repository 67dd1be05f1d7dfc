package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	domainerrors "ideadrop/internal/domain/errors"
	"ideadrop/internal/domain/service"
)

// UserIDContextKey is the echo context key carrying the authenticated
// user's id.
const UserIDContextKey = "userID"

// AuthMiddleware provides the gate that validates JWT access tokens on
// protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and resolves the
// embedded user id onto the request context. The token claim is
// trusted as-is: the guard does not re-check that the user still
// exists in the store (the refresh flow does; the asymmetry is
// intentional).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("Not authorized, no token")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WrapMessage("Not authorized, no token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("Not authorized, token failed")
		}

		// Set the acting identity on the context for handlers to use.
		c.Set(UserIDContextKey, claims.UserID)

		return next(c)
	}
}

// UserIDFromContext resolves the acting identity set by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("Not authorized, no token")
	}

	return userID, nil
}
