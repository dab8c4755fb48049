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

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type advanceStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// Checkout converts the caller's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	order, err := h.uc.Checkout(c.Request().Context(), profile)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

// ListForBuyer returns the caller's orders, newest first.
func (h *OrderHandler) ListForBuyer(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListForBuyer(c.Request().Context(), profile.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetForBuyer returns one of the caller's own orders.
func (h *OrderHandler) GetForBuyer(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	order, err := h.uc.GetForBuyer(c.Request().Context(), profile.UID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListForArtisan returns orders containing the calling artisan's items,
// oldest first, each annotated with the artisan's own item subset.
func (h *OrderHandler) ListForArtisan(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.uc.ListForArtisan(c.Request().Context(), profile.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// MarkReadyForPickup performs the artisan's single allowed transition.
func (h *OrderHandler) MarkReadyForPickup(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	order, err := h.uc.MarkReadyForPickup(c.Request().Context(), profile.UID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order marked ready for pickup")
}

// ListActiveForAdmin returns orders in the delivery pipeline, oldest first.
func (h *OrderHandler) ListActiveForAdmin(c echo.Context) error {
	orders, err := h.uc.ListActiveForAdmin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// AdvanceStatus performs an admin transition on the delivery leg.
func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	var input *advanceStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	order, err := h.uc.AdvanceStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}
