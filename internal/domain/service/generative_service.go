package service

import (
	"context"

	"haven/internal/domain/entity"
)

// ProductAnalysis is the structured response of the pricing/marketing
// analysis adapter.
type ProductAnalysis struct {
	PricingAnalysis    string   `json:"pricingAnalysis"`
	DescriptionRewrite string   `json:"descriptionRewrite"`
	MarketingTips      []string `json:"marketingTips"`
}

// ChatMessage is one turn of the shopping assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

// GenerativeService wraps the generative AI API. All methods are stateless
// request/response calls with no retry; a failure is surfaced to the caller
// as-is.
type GenerativeService interface {
	// EnhanceDescription rewrites a product description in marketplace copy.
	EnhanceDescription(ctx context.Context, productName, description string) (string, error)

	// EnhanceStory rewrites an artisan's personal story.
	EnhanceStory(ctx context.Context, story string) (string, error)

	// AnalyzeProduct returns pricing and marketing advice as structured JSON.
	AnalyzeProduct(ctx context.Context, name, description string, pricePaise int64) (*ProductAnalysis, error)

	// GenerateBrandKit builds a complete brand kit from a name and description.
	GenerateBrandKit(ctx context.Context, brandName, brandDescription string) (*entity.BrandKit, error)

	// GenerateImage produces a product lifestyle photograph and returns it as
	// a data URL.
	GenerateImage(ctx context.Context, productName, productDescription string) (string, error)

	// Chat answers one shopping-assistant turn, optionally grounded on an
	// inline image (base64-encoded JPEG).
	Chat(ctx context.Context, history []ChatMessage, imageData string) (string, error)
}
