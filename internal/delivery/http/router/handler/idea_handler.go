package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ideadrop/internal/delivery/http/middleware"
	"ideadrop/internal/delivery/http/response"
	domainerrors "ideadrop/internal/domain/errors"
	"ideadrop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdeaHandler holds dependencies for idea CRUD handlers.
type IdeaHandler struct {
	uc     usecase.IdeaUsecase
	logger *slog.Logger
}

// NewIdeaHandler is the constructor for IdeaHandler, injected by Fx.
func NewIdeaHandler(uc usecase.IdeaUsecase, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns ideas newest-first. An optional _limit query parameter
// bounds the result; anything non-numeric falls back to unbounded.
func (h *IdeaHandler) List(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("_limit"))
	if err != nil {
		limit = 0
	}

	ideas, err := h.uc.List(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, ideas)
}

// Get returns a single idea by id.
func (h *IdeaHandler) Get(c echo.Context) error {
	idea, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, idea)
}

// Create stores a new idea owned by the authenticated user.
func (h *IdeaHandler) Create(c echo.Context) error {
	userID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.IdeaInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WrapMessage("Invalid idea input")
	}

	idea, err := h.uc.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, idea)
}

// Update replaces all mutable fields of an idea the authenticated
// user owns. The body is bound here but validated in the usecase, so
// an empty body against someone else's idea still fails on ownership.
func (h *IdeaHandler) Update(c echo.Context) error {
	userID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.IdeaInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidation.WrapMessage("Invalid idea input")
	}

	idea, err := h.uc.Update(c.Request().Context(), userID, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, idea)
}

// Delete removes an idea the authenticated user owns.
func (h *IdeaHandler) Delete(c echo.Context) error {
	userID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Idea deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
