package impl

import (
	"context"
	"testing"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	mockRepo "haven/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func verifiedProduct() *entity.Product {
	return &entity.Product{
		ID:          "p1",
		ArtisanID:   "artisan-1",
		Name:        "Blue pottery vase",
		PricePaise:  120000,
		ImageURLs:   []string{"https://img/p1-cover.jpg", "https://img/p1-alt.jpg"},
		IsVerified:  true,
		Description: "Hand-thrown vase",
	}
}

func TestCartService_AddItem_SnapshotsProduct(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()

	mockProductRepo.EXPECT().FindByID(ctx, "p1").Return(verifiedProduct(), nil)
	mockCartRepo.EXPECT().Get(ctx, "buyer-1").Return(&entity.Cart{OwnerUID: "buyer-1"}, nil)

	var saved *entity.Cart
	mockCartRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, cart *entity.Cart) {
			saved = cart
		}).
		Return(nil)

	cart, err := svc.AddItem(ctx, "buyer-1", "p1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, int64(120000), cart.Items[0].PricePaise)
	assert.Equal(t, "https://img/p1-cover.jpg", cart.Items[0].ImageURL)
	assert.Equal(t, "artisan-1", cart.Items[0].ArtisanID)
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	existing := &entity.Cart{
		OwnerUID: "buyer-1",
		Items:    []entity.CartItem{{ProductID: "p1", Quantity: 2, PricePaise: 120000}},
	}

	mockProductRepo.EXPECT().FindByID(ctx, "p1").Return(verifiedProduct(), nil)
	mockCartRepo.EXPECT().Get(ctx, "buyer-1").Return(existing, nil)
	mockCartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := svc.AddItem(ctx, "buyer-1", "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartService_AddItem_UnverifiedProductHidden(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	pending := verifiedProduct()
	pending.IsVerified = false

	mockProductRepo.EXPECT().FindByID(ctx, "p1").Return(pending, nil)

	_, err := svc.AddItem(ctx, "buyer-1", "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_ProductMissing(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()

	mockProductRepo.EXPECT().FindByID(ctx, "p1").Return(nil, repository.ErrProductNotFound)

	_, err := svc.AddItem(ctx, "buyer-1", "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_SetQuantity_ZeroRemovesLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	existing := &entity.Cart{
		OwnerUID: "buyer-1",
		Items: []entity.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}

	mockCartRepo.EXPECT().Get(ctx, "buyer-1").Return(existing, nil)
	mockCartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := svc.SetQuantity(ctx, "buyer-1", "p1", 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCartService_RemoveItem(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	existing := &entity.Cart{
		OwnerUID: "buyer-1",
		Items:    []entity.CartItem{{ProductID: "p1", Quantity: 1}},
	}

	mockCartRepo.EXPECT().Get(ctx, "buyer-1").Return(existing, nil)
	mockCartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := svc.RemoveItem(ctx, "buyer-1", "p1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_Get_MissingDocIsEmptyCart(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()

	mockCartRepo.EXPECT().Get(ctx, "buyer-1").Return(&entity.Cart{OwnerUID: "buyer-1"}, nil)

	cart, err := svc.Get(ctx, "buyer-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Count())
	assert.Zero(t, cart.TotalPaise())
}
