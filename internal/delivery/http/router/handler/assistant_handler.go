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

// AssistantHandler holds dependencies for the AI advisory handlers.
type AssistantHandler struct {
	uc     usecase.AssistantUsecase
	logger *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(uc usecase.AssistantUsecase, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{uc: uc, logger: logger}
}

// EnhanceDescription rewrites a product description in marketplace copy.
func (h *AssistantHandler) EnhanceDescription(c echo.Context) error {
	var input *usecase.EnhanceDescriptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid description input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	text, err := h.uc.EnhanceDescription(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"text": text}, "")
}

// EnhanceStory rewrites an artisan's story.
func (h *AssistantHandler) EnhanceStory(c echo.Context) error {
	var input *usecase.EnhanceStoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid story input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	text, err := h.uc.EnhanceStory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"text": text}, "")
}

// AnalyzeProduct returns structured pricing and marketing advice.
func (h *AssistantHandler) AnalyzeProduct(c echo.Context) error {
	var input *usecase.AnalyzeProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	analysis, err := h.uc.AnalyzeProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analysis, "")
}

// GenerateBrandKit builds a brand kit and saves it on the calling artisan's
// profile.
func (h *AssistantHandler) GenerateBrandKit(c echo.Context) error {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}
	if profile.Role != entity.RoleArtisan {
		return domainerrors.ErrArtisanRequired
	}

	var input *usecase.BrandKitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand kit input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	kit, err := h.uc.GenerateBrandKit(c.Request().Context(), profile.UID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, kit, "Brand kit generated")
}

// GenerateImage produces a lifestyle product photo as a data URL.
func (h *AssistantHandler) GenerateImage(c echo.Context) error {
	var input *usecase.GenerateImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	dataURL, err := h.uc.GenerateImage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"imageUrl": dataURL}, "")
}

// Chat answers one shopping-assistant turn.
func (h *AssistantHandler) Chat(c echo.Context) error {
	var input *usecase.ChatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	reply, err := h.uc.Chat(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"reply": reply}, "")
}
