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

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// ListPublic returns all verified products, newest first.
func (h *CatalogHandler) ListPublic(c echo.Context) error {
	products, err := h.uc.ListPublic(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetPublic returns one verified product.
func (h *CatalogHandler) GetPublic(c echo.Context) error {
	product, err := h.uc.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// GetArtisanPage returns an artisan's public storefront.
func (h *CatalogHandler) GetArtisanPage(c echo.Context) error {
	page, err := h.uc.GetArtisanPage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// ListOwn returns all of the calling artisan's listings, verified or not.
func (h *CatalogHandler) ListOwn(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	products, err := h.uc.ListOwnProducts(c.Request().Context(), profile.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Create creates a new unverified listing owned by the calling artisan.
func (h *CatalogHandler) Create(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), profile, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product submitted for review")
}

// Update edits an owned listing; the verification state is untouched.
func (h *CatalogHandler) Update(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), profile.UID, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Delete removes an owned listing.
func (h *CatalogHandler) Delete(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), profile.UID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// ListPending returns the admin review queue, oldest first.
func (h *CatalogHandler) ListPending(c echo.Context) error {
	products, err := h.uc.ListPendingProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Approve marks a product verified. Approval is one-way.
func (h *CatalogHandler) Approve(c echo.Context) error {
	if err := h.uc.ApproveProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product approved")
}
