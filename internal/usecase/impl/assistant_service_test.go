package impl

import (
	"context"
	"testing"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/service"
	mockRepo "haven/internal/mocks/repository"
	mockSvc "haven/internal/mocks/service"
	"haven/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssistantService_EnhanceDescription(t *testing.T) {
	mockGen := mockSvc.NewMockGenerativeService(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAssistantService(mockGen, mockUserRepo, testLogger())

	ctx := context.Background()

	mockGen.EXPECT().
		EnhanceDescription(ctx, "Blue pottery vase", "a vase").
		Return("A hand-thrown blue pottery vase.", nil)

	text, err := svc.EnhanceDescription(ctx, &usecase.EnhanceDescriptionInput{
		ProductName: "Blue pottery vase",
		Description: "a vase",
	})
	require.NoError(t, err)
	assert.Equal(t, "A hand-thrown blue pottery vase.", text)
}

func TestAssistantService_GenerationFailureSurfacesAsUpstreamError(t *testing.T) {
	mockGen := mockSvc.NewMockGenerativeService(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAssistantService(mockGen, mockUserRepo, testLogger())

	ctx := context.Background()

	mockGen.EXPECT().
		EnhanceStory(ctx, "my story").
		Return("", assert.AnError)

	_, err := svc.EnhanceStory(ctx, &usecase.EnhanceStoryInput{Story: "my story"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGenerationFailed)
}

func TestAssistantService_AnalyzeProduct(t *testing.T) {
	mockGen := mockSvc.NewMockGenerativeService(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAssistantService(mockGen, mockUserRepo, testLogger())

	ctx := context.Background()
	analysis := &service.ProductAnalysis{
		PricingAnalysis:    "Fair for handmade.",
		DescriptionRewrite: "Better copy.",
		MarketingTips:      []string{"Show process photos."},
	}

	mockGen.EXPECT().
		AnalyzeProduct(ctx, "Vase", "a vase", int64(120000)).
		Return(analysis, nil)

	got, err := svc.AnalyzeProduct(ctx, &usecase.AnalyzeProductInput{
		Name:        "Vase",
		Description: "a vase",
		PricePaise:  120000,
	})
	require.NoError(t, err)
	assert.Equal(t, analysis, got)
}

func TestAssistantService_GenerateBrandKit_PersistsKit(t *testing.T) {
	mockGen := mockSvc.NewMockGenerativeService(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAssistantService(mockGen, mockUserRepo, testLogger())

	ctx := context.Background()
	kit := &entity.BrandKit{
		MissionStatement: "Keep the craft alive.",
		Tagline:          "Clay, fire, patience",
	}

	mockGen.EXPECT().
		GenerateBrandKit(ctx, "Ravi Pottery", "blue pottery studio").
		Return(kit, nil)

	mockUserRepo.EXPECT().
		UpdateBrandKit(ctx, "artisan-1", kit).
		Return(nil)

	got, err := svc.GenerateBrandKit(ctx, "artisan-1", &usecase.BrandKitInput{
		BrandName:        "Ravi Pottery",
		BrandDescription: "blue pottery studio",
	})
	require.NoError(t, err)
	assert.Equal(t, kit, got)
}

func TestAssistantService_GenerateBrandKit_SaveFailure(t *testing.T) {
	mockGen := mockSvc.NewMockGenerativeService(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAssistantService(mockGen, mockUserRepo, testLogger())

	ctx := context.Background()

	mockGen.EXPECT().
		GenerateBrandKit(ctx, "Ravi Pottery", "blue pottery studio").
		Return(&entity.BrandKit{}, nil)

	mockUserRepo.EXPECT().
		UpdateBrandKit(ctx, "artisan-1", mock.Anything).
		Return(assert.AnError)

	_, err := svc.GenerateBrandKit(ctx, "artisan-1", &usecase.BrandKitInput{
		BrandName:        "Ravi Pottery",
		BrandDescription: "blue pottery studio",
	})
	require.Error(t, err)
}

func TestAssistantService_Chat(t *testing.T) {
	mockGen := mockSvc.NewMockGenerativeService(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAssistantService(mockGen, mockUserRepo, testLogger())

	ctx := context.Background()
	history := []service.ChatMessage{{Role: "user", Content: "Show me pottery"}}

	mockGen.EXPECT().
		Chat(ctx, history, "").
		Return("Here are some pottery pieces.", nil)

	reply, err := svc.Chat(ctx, &usecase.ChatInput{History: history})
	require.NoError(t, err)
	assert.Equal(t, "Here are some pottery pieces.", reply)
}
