// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ideadrop/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user. The
// password must carry at least 6 characters; the other constraints are
// re-checked post-trim by the usecase.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SessionOutput returns the issued tokens together with the public
// user fields. The refresh token only ever travels to the client as an
// HTTP-only cookie set by the delivery layer.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.PublicUser
}

// RefreshOutput returns the re-derived access token and the resolved
// user. The refresh token is not rotated.
type RefreshOutput struct {
	AccessToken string
	User        *entity.PublicUser
}

// AuthUsecase defines the interface for the authentication session
// lifecycle. This is the contract that the delivery layer depends on.
// Logout has no entry here: it is stateless and only clears the
// client's cookie, which is purely a delivery concern.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
}
