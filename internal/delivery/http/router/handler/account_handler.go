package handler

import (
	"encoding/json"
	"fmt"
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

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

// Register creates the account document with an explicitly chosen role.
func (h *AccountHandler) Register(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	profile, err := h.uc.Register(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Account registered successfully")
}

// Ensure creates a buyer account on first social sign-in and returns the
// resolved profile either way.
func (h *AccountHandler) Ensure(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	profile, err := h.uc.EnsureProfile(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile ready")
}

// Me returns the resolved profile of the caller.
func (h *AccountHandler) Me(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Stream pushes the caller's resolved profile as server-sent events whenever
// the user document changes, until the client disconnects.
func (h *AccountHandler) Stream(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	ctx := c.Request().Context()

	profiles, err := h.uc.Watch(ctx, identity)
	if err != nil {
		return errors.WithStack(err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case profile, open := <-profiles:
			if !open {
				return nil
			}

			payload, err := json.Marshal(profile)
			if err != nil {
				h.logger.Error("Failed to encode profile event", slog.Any("error", err))

				continue
			}

			if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// UpdateShippingAddress saves the buyer's delivery address.
func (h *AccountHandler) UpdateShippingAddress(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *usecase.ShippingAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipping address input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateShippingAddress(c.Request().Context(), profile.UID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shipping address saved")
}

type updateStoryInput struct {
	Story string `json:"story" validate:"required"`
}

// UpdateStory saves the artisan's story text.
func (h *AccountHandler) UpdateStory(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}
	if profile.Role != entity.RoleArtisan {
		return domainerrors.ErrArtisanRequired
	}

	var input *updateStoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid story input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.UpdateStory(c.Request().Context(), profile.UID, input.Story); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Story saved")
}
