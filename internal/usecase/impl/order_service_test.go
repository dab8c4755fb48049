package impl

import (
	"context"
	"testing"

	"haven/config"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/service"
	mockRepo "haven/internal/mocks/repository"
	mockSvc "haven/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrdersConfig() *config.Config {
	return &config.Config{
		Orders: config.OrdersConfig{DeliveryChargePaise: 5000},
	}
}

func testBuyer() *entity.User {
	return &entity.User{
		UID:  "buyer-1",
		Role: entity.RoleBuyer,
		ShippingAddress: &entity.ShippingAddress{
			Name:    "Maya",
			Line1:   "12 Lake Road",
			City:    "Jaipur",
			State:   "Rajasthan",
			Pincode: "302001",
			Phone:   "+911234567890",
		},
	}
}

func testCart() *entity.Cart {
	return &entity.Cart{
		OwnerUID: "buyer-1",
		Items: []entity.CartItem{
			{ProductID: "p1", ArtisanID: "artisan-1", Name: "Blue pottery vase", PricePaise: 120000, Quantity: 2, ImageURL: "https://img/p1.jpg"},
			{ProductID: "p2", ArtisanID: "artisan-2", Name: "Block print scarf", PricePaise: 80000, Quantity: 1, ImageURL: "https://img/p2.jpg"},
			{ProductID: "p3", ArtisanID: "artisan-1", Name: "Clay diya set", PricePaise: 30000, Quantity: 3, ImageURL: "https://img/p3.jpg"},
		},
	}
}

func TestOrderService_Checkout_SnapshotsAndTotals(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()

	mockCartRepo.EXPECT().
		Get(ctx, "buyer-1").
		Return(testCart(), nil)

	var created *entity.Order
	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			created = order
		}).
		Return("order-1", nil)

	mockCartRepo.EXPECT().
		Clear(ctx, "buyer-1").
		Return(nil)

	mockPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := svc.Checkout(ctx, testBuyer())
	require.NoError(t, err)
	require.NotNil(t, created)

	// subtotal = 2*120000 + 80000 + 3*30000 = 410000
	assert.Equal(t, int64(410000), order.SubtotalPaise)
	assert.Equal(t, int64(5000), order.DeliveryChargePaise)
	assert.Equal(t, int64(415000), order.TotalAmountPaise)
	assert.Equal(t, entity.StatusPackaging, order.Status)
	assert.Equal(t, "Manual Checkout", order.PaymentMethod)
	assert.Equal(t, "Paid", order.PaymentStatus)
	assert.Equal(t, []string{"artisan-1", "artisan-2"}, order.ArtisanIDs)
	assert.Len(t, order.Items, 3)
	assert.Equal(t, "Jaipur", order.ShippingAddress.City)
}

func TestOrderService_Checkout_EmptyCartAborts(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()

	mockCartRepo.EXPECT().
		Get(ctx, "buyer-1").
		Return(&entity.Cart{OwnerUID: "buyer-1"}, nil)

	_, err := svc.Checkout(ctx, testBuyer())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_Checkout_MissingAddressAborts(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	buyer := testBuyer()
	buyer.ShippingAddress = nil

	_, err := svc.Checkout(context.Background(), buyer)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAddressMissing)
}

func TestOrderService_Checkout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()

	mockCartRepo.EXPECT().Get(ctx, "buyer-1").Return(testCart(), nil)
	mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return("order-1", nil)
	mockCartRepo.EXPECT().Clear(ctx, "buyer-1").Return(nil)
	mockPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(assert.AnError)

	order, err := svc.Checkout(ctx, testBuyer())
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestOrderService_MarkReadyForPickup(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()
	order := &entity.Order{
		ID:         "order-1",
		BuyerID:    "buyer-1",
		ArtisanIDs: []string{"artisan-1"},
		Status:     entity.StatusPackaging,
	}

	mockOrderRepo.EXPECT().FindByID(ctx, "order-1").Return(order, nil)
	mockOrderRepo.EXPECT().UpdateStatus(ctx, "order-1", entity.StatusReadyForPickup).Return(nil)

	var published *service.OrderEvent
	mockPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			published = event
		}).
		Return(nil)

	updated, err := svc.MarkReadyForPickup(ctx, "artisan-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReadyForPickup, updated.Status)
	require.NotNil(t, published)
	assert.Equal(t, service.OrderEventStatusChanged, published.Type)
	assert.Equal(t, entity.StatusReadyForPickup.String(), published.Status)
}

func TestOrderService_MarkReadyForPickup_WrongArtisan(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()
	order := &entity.Order{
		ID:         "order-1",
		ArtisanIDs: []string{"artisan-1"},
		Status:     entity.StatusPackaging,
	}

	mockOrderRepo.EXPECT().FindByID(ctx, "order-1").Return(order, nil)

	_, err := svc.MarkReadyForPickup(ctx, "artisan-2", "order-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnership)
}

func TestOrderService_MarkReadyForPickup_AlreadyMoved(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()
	order := &entity.Order{
		ID:         "order-1",
		ArtisanIDs: []string{"artisan-1"},
		Status:     entity.StatusShipped,
	}

	mockOrderRepo.EXPECT().FindByID(ctx, "order-1").Return(order, nil)

	_, err := svc.MarkReadyForPickup(ctx, "artisan-1", "order-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_AdvanceStatus_ForwardJumpAllowed(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()
	order := &entity.Order{ID: "order-1", Status: entity.StatusReadyForPickup}

	mockOrderRepo.EXPECT().FindByID(ctx, "order-1").Return(order, nil)
	mockOrderRepo.EXPECT().UpdateStatus(ctx, "order-1", entity.StatusDelivered).Return(nil)
	mockPublisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	updated, err := svc.AdvanceStatus(ctx, "order-1", entity.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, updated.Status)
}

func TestOrderService_AdvanceStatus_Guards(t *testing.T) {
	tests := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{"regression", entity.StatusOutForDelivery, entity.StatusShipped},
		{"packaging belongs to artisan", entity.StatusPackaging, entity.StatusShipped},
		{"delivered is terminal", entity.StatusDelivered, entity.StatusDelivered},
		{"ready for pickup is not an admin target", entity.StatusShipped, entity.StatusReadyForPickup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockPublisher := mockSvc.NewMockEventPublisher(t)
			svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

			ctx := context.Background()
			mockOrderRepo.EXPECT().
				FindByID(ctx, "order-1").
				Return(&entity.Order{ID: "order-1", Status: tt.from}, nil)

			_, err := svc.AdvanceStatus(ctx, "order-1", tt.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
		})
	}
}

func TestOrderService_AdvanceStatus_UnknownStatus(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	_, err := svc.AdvanceStatus(context.Background(), "order-1", entity.OrderStatus("Cancelled"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestOrderService_GetForBuyer_OwnershipHidesOrder(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()

	mockOrderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(&entity.Order{ID: "order-1", BuyerID: "buyer-2"}, nil)

	_, err := svc.GetForBuyer(ctx, "buyer-1", "order-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListForArtisan_MarksOwnItems(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()
	orders := []*entity.Order{
		{
			ID:         "order-1",
			ArtisanIDs: []string{"artisan-1", "artisan-2"},
			Items: []entity.OrderItem{
				{ProductID: "p1", ArtisanID: "artisan-1"},
				{ProductID: "p2", ArtisanID: "artisan-2"},
			},
		},
	}

	mockOrderRepo.EXPECT().ListByArtisan(ctx, "artisan-1").Return(orders, nil)

	views, err := svc.ListForArtisan(ctx, "artisan-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].OwnItems, 1)
	assert.Equal(t, "p1", views[0].OwnItems[0].ProductID)
}

func TestOrderService_ListActiveForAdmin_UsesDeliveryPipeline(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(mockOrderRepo, mockCartRepo, mockPublisher, testOrdersConfig(), testLogger())

	ctx := context.Background()

	mockOrderRepo.EXPECT().
		ListByStatuses(ctx, entity.AdminActiveStatuses()).
		Return([]*entity.Order{}, nil)

	orders, err := svc.ListActiveForAdmin(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
