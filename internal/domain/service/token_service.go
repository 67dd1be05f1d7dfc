package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying the
// stateless, signed tokens that carry a session. Both token tiers are
// signed with the same process-wide secret; the only difference is
// their time-to-live.
type TokenService interface {
	// GenerateTokenPair creates a short-lived access token and a
	// long-lived refresh token for the given user.
	GenerateTokenPair(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only a new access token. Used by the
	// refresh flow, which never re-issues the refresh token.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken checks a token's signature and expiry and returns
	// its claims. No other validation is performed.
	ValidateToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh token TTL,
	// which also bounds the refresh cookie's max age.
	RefreshTokenDuration() time.Duration
}
