// Package ai implements the generative advisory features on the Gemini API.
// Every call is a stateless request/response; conversation state lives with
// the caller and is replayed as content history.
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"haven/config"
	"haven/internal/domain/entity"
	"haven/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const (
	defaultModel      = "gemini-2.0-flash"
	defaultImageModel = "gemini-2.0-flash-preview-image-generation"
)

type geminiService struct {
	client     *genai.Client
	model      string
	imageModel string
	logger     *slog.Logger
}

// NewGeminiService creates a GenerativeService backed by the Gemini API.
func NewGeminiService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.GenerativeService, error) {
	if cfg.Gemini == nil || cfg.Gemini.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	model := cfg.Gemini.Model
	if model == "" {
		model = defaultModel
	}
	imageModel := cfg.Gemini.ImageModel
	if imageModel == "" {
		imageModel = defaultImageModel
	}

	return &geminiService{
		client:     client,
		model:      model,
		imageModel: imageModel,
		logger:     logger,
	}, nil
}

// EnhanceDescription rewrites a product description in marketplace copy.
func (s *geminiService) EnhanceDescription(ctx context.Context, productName, description string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a copywriter for an Indian handcrafted goods marketplace. "+
			"Rewrite the following product description to be warm, evocative and concise "+
			"(2-3 sentences), highlighting craftsmanship and materials. "+
			"Return only the rewritten description, no preamble.\n\n"+
			"Product: %s\nDescription: %s",
		productName, description,
	)

	return s.generateText(ctx, prompt)
}

// EnhanceStory rewrites an artisan's personal story.
func (s *geminiService) EnhanceStory(ctx context.Context, story string) (string, error) {
	prompt := fmt.Sprintf(
		"You are an editor helping an artisan tell their story to buyers. "+
			"Polish the following first-person story: keep the voice and facts, improve flow "+
			"and warmth, at most two short paragraphs. Return only the story.\n\n%s",
		story,
	)

	return s.generateText(ctx, prompt)
}

// AnalyzeProduct returns pricing and marketing advice as structured JSON.
func (s *geminiService) AnalyzeProduct(ctx context.Context, name, description string, pricePaise int64) (*service.ProductAnalysis, error) {
	prompt := fmt.Sprintf(
		"Analyze this handcrafted product listing from an Indian marketplace. "+
			"Assess whether the price is fair for handmade goods of this kind, rewrite the "+
			"description for conversion, and give actionable marketing tips.\n\n"+
			"Name: %s\nDescription: %s\nPrice: ₹%.2f",
		name, description, float64(pricePaise)/100,
	)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"pricingAnalysis":    {Type: genai.TypeString},
			"descriptionRewrite": {Type: genai.TypeString},
			"marketingTips": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"pricingAnalysis", "descriptionRewrite", "marketingTips"},
	}

	raw, err := s.generateJSON(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var analysis service.ProductAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, errors.Wrap(err, "failed to decode product analysis")
	}

	return &analysis, nil
}

// GenerateBrandKit builds a complete brand kit from a name and description.
func (s *geminiService) GenerateBrandKit(ctx context.Context, brandName, brandDescription string) (*entity.BrandKit, error) {
	prompt := fmt.Sprintf(
		"Create a brand kit for an artisan business. "+
			"Mission statement (1 sentence), tagline (under 8 words), a palette of 4 colors "+
			"with names and hex values, a headline/body font pairing from Google Fonts, and "+
			"3 logo concept descriptions.\n\nBrand: %s\nAbout: %s",
		brandName, brandDescription,
	)

	fontSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":   {Type: genai.TypeString},
			"weight": {Type: genai.TypeString},
		},
		Required: []string{"name", "weight"},
	}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"missionStatement": {Type: genai.TypeString},
			"tagline":          {Type: genai.TypeString},
			"colorPalette": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString},
						"hex":  {Type: genai.TypeString},
					},
					Required: []string{"name", "hex"},
				},
			},
			"fontPairing": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"headline": fontSchema,
					"body":     fontSchema,
				},
				Required: []string{"headline", "body"},
			},
			"logoIdeas": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"missionStatement", "tagline", "colorPalette", "fontPairing", "logoIdeas"},
	}

	raw, err := s.generateJSON(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var kit entity.BrandKit
	if err := json.Unmarshal([]byte(raw), &kit); err != nil {
		return nil, errors.Wrap(err, "failed to decode brand kit")
	}

	return &kit, nil
}

// GenerateImage produces a product lifestyle photograph and returns it as a
// data URL the client can render or upload.
func (s *geminiService) GenerateImage(ctx context.Context, productName, productDescription string) (string, error) {
	prompt := fmt.Sprintf(
		"Generate a single warm, natural-light lifestyle photograph of this handcrafted "+
			"product in an Indian home setting. No text or watermarks.\n\n"+
			"Product: %s\nDescription: %s",
		productName, productDescription,
	)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := s.client.Models.GenerateContent(ctx, s.imageModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return "", errors.Wrap(err, "image generation failed")
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)

				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MIMEType, encoded), nil
			}
		}
	}

	return "", errors.New("no image returned")
}

// Chat answers one shopping-assistant turn. The full history is replayed each
// call; when imageData is set the latest user turn carries the photo inline.
func (s *geminiService) Chat(ctx context.Context, history []service.ChatMessage, imageData string) (string, error) {
	system := "You are a friendly shopping assistant for a marketplace of handcrafted " +
		"Indian goods. Help buyers find products, explain crafts and materials, and keep " +
		"answers short. If shown a photo, identify the craft style and suggest similar items."

	contents := make([]*genai.Content, 0, len(history))
	for i, msg := range history {
		role := genai.Role(genai.RoleUser)
		if msg.Role == "model" {
			role = genai.RoleModel
		}

		parts := []*genai.Part{genai.NewPartFromText(msg.Content)}
		if imageData != "" && i == len(history)-1 && role == genai.RoleUser {
			decoded, err := base64.StdEncoding.DecodeString(imageData)
			if err != nil {
				return "", errors.Wrap(err, "invalid inline image data")
			}
			parts = append(parts, genai.NewPartFromBytes(decoded, "image/jpeg"))
		}

		contents = append(contents, genai.NewContentFromParts(parts, role))
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", errors.Wrap(err, "chat generation failed")
	}

	return s.responseText(resp)
}

func (s *geminiService) generateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", errors.Wrap(err, "text generation failed")
	}

	return s.responseText(resp)
}

func (s *geminiService) generateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", errors.Wrap(err, "structured generation failed")
	}

	return s.responseText(resp)
}

func (s *geminiService) responseText(resp *genai.GenerateContentResponse) (string, error) {
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty model response")
	}

	return text, nil
}
