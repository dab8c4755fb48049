package handler

import (
	"log/slog"
	"net/http"

	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/response"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler holds dependencies for artisan verification handlers.
type VerificationHandler struct {
	uc     usecase.VerificationUsecase
	logger *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{uc: uc, logger: logger}
}

// Submit stores the calling artisan's document packet. Unverified artisans
// may submit; that is the whole point of the workflow.
func (h *VerificationHandler) Submit(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}
	if profile.Role != entity.RoleArtisan {
		return domainerrors.ErrArtisanRequired
	}

	var input *usecase.SubmitVerificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	submission, err := h.uc.Submit(c.Request().Context(), profile, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, submission, "Verification submitted")
}

// GetOwn returns the calling artisan's submission.
func (h *VerificationHandler) GetOwn(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	submission, err := h.uc.GetOwn(c.Request().Context(), profile.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submission, "")
}

// ListPending returns submissions awaiting review, oldest first.
func (h *VerificationHandler) ListPending(c echo.Context) error {
	submissions, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submissions, "")
}

// Approve flips the artisan's verified flag, then settles the submission.
func (h *VerificationHandler) Approve(c echo.Context) error {
	if err := h.uc.Approve(c.Request().Context(), c.Param("uid")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification approved")
}

// Reject settles the submission without touching the user document.
func (h *VerificationHandler) Reject(c echo.Context) error {
	if err := h.uc.Reject(c.Request().Context(), c.Param("uid")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification rejected")
}
