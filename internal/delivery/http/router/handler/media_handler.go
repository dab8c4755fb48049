package handler

import (
	"log/slog"
	"net/http"

	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/response"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// MediaHandler issues upload tickets for direct client uploads. It is a thin
// pass-through over the signer; file bytes never touch the server.
type MediaHandler struct {
	signer service.MediaSigner
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(signer service.MediaSigner, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{signer: signer, logger: logger}
}

type signUploadInput struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

// SignUpload returns a time-boxed presigned PUT URL plus the public URL the
// object will be readable at.
func (h *MediaHandler) SignUpload(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input *signUploadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upload input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	ticket, err := h.signer.SignUpload(c.Request().Context(), profile.UID, input.FileName, input.ContentType)
	if err != nil {
		h.logger.Error("Failed to sign upload", slog.Any("error", err))

		return domainerrors.ErrSigningFailed
	}

	return response.Success(c, http.StatusOK, ticket, "")
}
