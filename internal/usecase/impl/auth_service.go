// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"ideadrop/internal/domain/entity"
	domainerrors "ideadrop/internal/domain/errors"
	"ideadrop/internal/domain/repository"
	"ideadrop/internal/domain/service"
	"ideadrop/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates the complete user registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidation.WrapMessage("All fields are required")
	}

	srv.logger.Info("Starting registration", slog.String("email", email))

	// Pre-check for an existing account. The unique index remains the
	// authority: a concurrent registration that slips past this check
	// is rejected by the store below.
	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("User already exists")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := time.Now()
	newUser := &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the registration race; indistinguishable from the
			// pre-check case for the caller.
			return nil, domainerrors.ErrDuplicateEmail.WrapMessage("User already exists")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	output, err := srv.issueSession(newUser)
	if err != nil {
		srv.logger.Error("Failed to issue tokens after registration", slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// Login orchestrates the user login process. An unknown email and a
// wrong password surface the identical error so callers cannot tell
// which part failed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidation.WrapMessage("Email and password are required")
	}

	srv.logger.Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("Invalid credentials")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("Invalid credentials")
	}

	output, err := srv.issueSession(user)
	if err != nil {
		srv.logger.Error("Failed to issue tokens during login", slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// Refresh re-derives a fresh access token from a refresh token. Unlike
// the auth guard, this path re-checks that the embedded user still
// exists; the refresh token itself is never rotated or re-issued.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	srv.logger.Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("Invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("No user")
		}

		return nil, errors.Wrap(err, "failed to find user for refresh")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshOutput{
		AccessToken: accessToken,
		User:        user.Public(),
	}, nil
}

// issueSession generates the access + refresh token pair for a user.
func (srv *authService) issueSession(user *entity.User) (*usecase.SessionOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Public(),
	}, nil
}

// normalizeEmail applies the canonical email form: trimmed, lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
