package impl

import (
	"context"
	"testing"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	mockRepo "haven/internal/mocks/repository"
	"haven/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testArtisan() *entity.User {
	return &entity.User{
		UID:               "artisan-1",
		DisplayName:       "Ravi",
		Role:              entity.RoleArtisan,
		IsVerifiedArtisan: true,
	}
}

func productInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Blue pottery vase",
		Description: "Hand-thrown vase",
		PricePaise:  120000,
		ImageURLs:   []string{"https://img/p1.jpg"},
	}
}

func TestCatalogService_CreateProduct_StartsUnverified(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	var created *entity.Product
	mockProductRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			created = product
		}).
		Return("p1", nil)

	product, err := svc.CreateProduct(ctx, testArtisan(), productInput())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, product.IsVerified)
	assert.Equal(t, "artisan-1", product.ArtisanID)
	assert.Equal(t, "Ravi", product.ArtisanName)
}

func TestCatalogService_CreateProduct_RequiresImage(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	input := productInput()
	input.ImageURLs = nil

	_, err := svc.CreateProduct(context.Background(), testArtisan(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductInvalid)
}

func TestCatalogService_UpdateProduct_KeepsVerification(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	ctx := context.Background()
	stored := &entity.Product{
		ID:         "p1",
		ArtisanID:  "artisan-1",
		Name:       "Old name",
		PricePaise: 90000,
		ImageURLs:  []string{"https://img/old.jpg"},
		IsVerified: true,
	}

	mockProductRepo.EXPECT().FindByID(ctx, "p1").Return(stored, nil)
	mockProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := svc.UpdateProduct(ctx, "artisan-1", "p1", productInput())
	require.NoError(t, err)
	assert.Equal(t, "Blue pottery vase", product.Name)
	assert.True(t, product.IsVerified)
}

func TestCatalogService_UpdateProduct_OwnershipEnforced(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	ctx := context.Background()
	stored := &entity.Product{ID: "p1", ArtisanID: "artisan-2"}

	mockProductRepo.EXPECT().FindByID(ctx, "p1").Return(stored, nil)

	_, err := svc.UpdateProduct(ctx, "artisan-1", "p1", productInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnership)
}

func TestCatalogService_DeleteProduct_OwnershipEnforced(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindByID(ctx, "p1").
		Return(&entity.Product{ID: "p1", ArtisanID: "artisan-2"}, nil)

	err := svc.DeleteProduct(ctx, "artisan-1", "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnership)
}

func TestCatalogService_GetPublic_HidesUnverified(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindByID(ctx, "p1").
		Return(&entity.Product{ID: "p1", IsVerified: false}, nil)

	_, err := svc.GetPublic(ctx, "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetArtisanPage(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	ctx := context.Background()
	artisan := testArtisan()
	artisan.ArtisanStory = "Third-generation potter."

	mockUserRepo.EXPECT().FindByUID(ctx, "artisan-1").Return(artisan, nil)
	mockProductRepo.EXPECT().
		ListVerifiedByArtisan(ctx, "artisan-1").
		Return([]*entity.Product{{ID: "p1", IsVerified: true}}, nil)

	page, err := svc.GetArtisanPage(ctx, "artisan-1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", page.DisplayName)
	assert.Equal(t, "Third-generation potter.", page.Story)
	assert.True(t, page.IsVerified)
	assert.Len(t, page.Products, 1)
}

func TestCatalogService_GetArtisanPage_BuyerIsNotAnArtisan(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUID(ctx, "buyer-1").
		Return(&entity.User{UID: "buyer-1", Role: entity.RoleBuyer}, nil)

	_, err := svc.GetArtisanPage(ctx, "buyer-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestCatalogService_ApproveProduct_NotFound(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(mockProductRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockProductRepo.EXPECT().
		SetVerified(ctx, "p1", true).
		Return(repository.ErrProductNotFound)

	err := svc.ApproveProduct(ctx, "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
