// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"ideadrop/config"
	"ideadrop/internal/delivery/http/response"
	domainerrors "ideadrop/internal/domain/errors"
	"ideadrop/internal/domain/service"
	"ideadrop/internal/usecase"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerValidationError maps struct-level validation failures onto
// the client-facing messages. A missing field takes precedence over
// the password length rule.
func registerValidationError(err error) error {
	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Tag() == "required" {
				return domainerrors.ErrValidation.WrapMessage("All fields are required")
			}
		}
		for _, fieldErr := range fieldErrs {
			if fieldErr.Tag() == "min" {
				return domainerrors.ErrValidation.WrapMessage("Password must be at least 6 characters")
			}
		}
	}

	return domainerrors.ErrValidation.WrapMessage("All fields are required")
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WrapMessage("Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return registerValidationError(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(newRefreshCookie(h.cfg, output.RefreshToken, h.tokenSvc.RefreshTokenDuration()))

	return response.JSON(c, http.StatusCreated, &response.Session{
		AccessToken: output.AccessToken,
		User:        output.User,
	})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WrapMessage("Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidation.WrapMessage("Email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(newRefreshCookie(h.cfg, output.RefreshToken, h.tokenSvc.RefreshTokenDuration()))

	return response.JSON(c, http.StatusCreated, &response.Session{
		AccessToken: output.AccessToken,
		User:        output.User,
	})
}

// Logout clears the refresh cookie. There is no server-side session
// state to tear down, so the handler never touches the usecase layer.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(clearedRefreshCookie(h.cfg))

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// Refresh exchanges the refresh cookie for a fresh access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("No refresh token")
	}

	output, err := h.uc.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &response.Session{
		AccessToken: output.AccessToken,
		User:        output.User,
	})
}
