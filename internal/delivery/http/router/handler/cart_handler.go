package handler

import (
	"log/slog"
	"net/http"

	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/response"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

type addItemInput struct {
	ProductID string `json:"productId" validate:"required"`
}

type setQuantityInput struct {
	Quantity int `json:"quantity"`
}

// Get returns the caller's cart; a missing document is an empty cart.
func (h *CartHandler) Get(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	cart, err := h.uc.Get(c.Request().Context(), profile.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem snapshots a verified product into the cart, or bumps its quantity.
func (h *CartHandler) AddItem(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *addItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	cart, err := h.uc.AddItem(c.Request().Context(), profile.UID, input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added")
}

// SetQuantity sets a line's quantity; zero or less removes the line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *setQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.uc.SetQuantity(c.Request().Context(), profile.UID, c.Param("productId"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Quantity updated")
}

// RemoveItem removes a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), profile.UID, c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := h.uc.Clear(c.Request().Context(), profile.UID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
