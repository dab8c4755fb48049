package usecase

import (
	"context"

	"haven/internal/domain/entity"
	"haven/internal/domain/service"
)

// AssistantUsecase defines the AI advisory operations. All of them are
// stateless pass-throughs to the generative backend with domain error
// mapping; GenerateBrandKit additionally persists the kit on the artisan's
// profile.
type AssistantUsecase interface {
	// EnhanceDescription rewrites a product description in marketplace copy.
	EnhanceDescription(ctx context.Context, input *EnhanceDescriptionInput) (string, error)

	// EnhanceStory rewrites an artisan's story.
	EnhanceStory(ctx context.Context, input *EnhanceStoryInput) (string, error)

	// AnalyzeProduct returns structured pricing and marketing advice.
	AnalyzeProduct(ctx context.Context, input *AnalyzeProductInput) (*service.ProductAnalysis, error)

	// GenerateBrandKit builds a brand kit and saves it on the artisan profile.
	GenerateBrandKit(ctx context.Context, artisanUID string, input *BrandKitInput) (*entity.BrandKit, error)

	// GenerateImage produces a lifestyle product photo as a data URL.
	GenerateImage(ctx context.Context, input *GenerateImageInput) (string, error)

	// Chat answers one shopping-assistant turn.
	Chat(ctx context.Context, input *ChatInput) (string, error)
}

// --- Input DTOs ---

// EnhanceDescriptionInput carries the listing fields to rewrite.
type EnhanceDescriptionInput struct {
	ProductName string `json:"productName" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// EnhanceStoryInput carries the story text to polish.
type EnhanceStoryInput struct {
	Story string `json:"story" validate:"required"`
}

// AnalyzeProductInput carries the listing to analyze.
type AnalyzeProductInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	PricePaise  int64  `json:"pricePaise" validate:"gte=0"`
}

// BrandKitInput carries the brand brief.
type BrandKitInput struct {
	BrandName        string `json:"brandName" validate:"required"`
	BrandDescription string `json:"brandDescription" validate:"required"`
}

// GenerateImageInput carries the product to photograph.
type GenerateImageInput struct {
	ProductName string `json:"productName" validate:"required"`
	Description string `json:"description,omitempty"`
}

// ChatInput carries one assistant turn: the running history plus an optional
// base64-encoded JPEG the buyer snapped.
type ChatInput struct {
	History   []service.ChatMessage `json:"history" validate:"required,min=1"`
	ImageData string                `json:"imageData,omitempty"`
}
