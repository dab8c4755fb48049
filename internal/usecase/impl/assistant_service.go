package impl

import (
	"context"
	"log/slog"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	"haven/internal/usecase"

	"github.com/pkg/errors"
)

// assistantService implements the AssistantUsecase interface. Generation
// failures surface as upstream errors; there is no retry.
type assistantService struct {
	generative service.GenerativeService
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(
	generative service.GenerativeService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AssistantUsecase {
	return &assistantService{
		generative: generative,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// EnhanceDescription rewrites a product description.
func (srv *assistantService) EnhanceDescription(ctx context.Context, input *usecase.EnhanceDescriptionInput) (string, error) {
	text, err := srv.generative.EnhanceDescription(ctx, input.ProductName, input.Description)
	if err != nil {
		return "", srv.generationError(err, "description enhancement")
	}

	return text, nil
}

// EnhanceStory rewrites an artisan's story.
func (srv *assistantService) EnhanceStory(ctx context.Context, input *usecase.EnhanceStoryInput) (string, error) {
	text, err := srv.generative.EnhanceStory(ctx, input.Story)
	if err != nil {
		return "", srv.generationError(err, "story enhancement")
	}

	return text, nil
}

// AnalyzeProduct returns structured pricing and marketing advice.
func (srv *assistantService) AnalyzeProduct(ctx context.Context, input *usecase.AnalyzeProductInput) (*service.ProductAnalysis, error) {
	analysis, err := srv.generative.AnalyzeProduct(ctx, input.Name, input.Description, input.PricePaise)
	if err != nil {
		return nil, srv.generationError(err, "product analysis")
	}

	return analysis, nil
}

// GenerateBrandKit builds a brand kit and persists it on the artisan profile,
// so the kit survives across sessions without the client re-uploading it.
func (srv *assistantService) GenerateBrandKit(ctx context.Context, artisanUID string, input *usecase.BrandKitInput) (*entity.BrandKit, error) {
	kit, err := srv.generative.GenerateBrandKit(ctx, input.BrandName, input.BrandDescription)
	if err != nil {
		return nil, srv.generationError(err, "brand kit generation")
	}

	if err := srv.userRepo.UpdateBrandKit(ctx, artisanUID, kit); err != nil {
		return nil, errors.Wrap(err, "failed to save brand kit")
	}

	srv.logger.Info("Brand kit generated", slog.String("artisan_uid", artisanUID))

	return kit, nil
}

// GenerateImage produces a lifestyle product photo as a data URL.
func (srv *assistantService) GenerateImage(ctx context.Context, input *usecase.GenerateImageInput) (string, error) {
	dataURL, err := srv.generative.GenerateImage(ctx, input.ProductName, input.Description)
	if err != nil {
		return "", srv.generationError(err, "image generation")
	}

	return dataURL, nil
}

// Chat answers one shopping-assistant turn.
func (srv *assistantService) Chat(ctx context.Context, input *usecase.ChatInput) (string, error) {
	reply, err := srv.generative.Chat(ctx, input.History, input.ImageData)
	if err != nil {
		return "", srv.generationError(err, "assistant chat")
	}

	return reply, nil
}

func (srv *assistantService) generationError(err error, operation string) error {
	srv.logger.Error("Generation failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	return errors.Wrap(domainerrors.ErrGenerationFailed, operation+" failed")
}
