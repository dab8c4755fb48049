package impl

import (
	"context"
	"log/slog"
	"time"

	"haven/config"
	deliverycontext "haven/internal/delivery/context"
	"haven/internal/domain/constants"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	"haven/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	eventPublisher service.EventPublisher
	deliveryCharge int64
	logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	eventPublisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		eventPublisher: eventPublisher,
		deliveryCharge: cfg.Orders.DeliveryChargePaise,
		logger:         logger,
	}
}

// Checkout converts the buyer's cart into an order. Aborts before any write
// when the cart is empty or no shipping address is saved, so a failed
// checkout leaves the cart exactly as it was.
func (srv *orderService) Checkout(ctx context.Context, buyer *entity.User) (*entity.Order, error) {
	if buyer.ShippingAddress == nil {
		return nil, errors.Wrap(domainerrors.ErrAddressMissing, "save a shipping address before checkout")
	}

	cart, err := srv.cartRepo.Get(ctx, buyer.UID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "cart is empty")
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, entity.OrderItem{
			ProductID:  line.ProductID,
			ArtisanID:  line.ArtisanID,
			Name:       line.Name,
			PricePaise: line.PricePaise,
			Quantity:   line.Quantity,
			ImageURL:   line.ImageURL,
		})
	}

	subtotal := cart.TotalPaise()
	order := &entity.Order{
		BuyerID:             buyer.UID,
		ArtisanIDs:          cart.ArtisanIDs(),
		ShippingAddress:     *buyer.ShippingAddress,
		Items:               items,
		SubtotalPaise:       subtotal,
		DeliveryChargePaise: srv.deliveryCharge,
		TotalAmountPaise:    subtotal + srv.deliveryCharge,
		Status:              entity.StatusPackaging,
		PaymentMethod:       constants.PaymentMethodManual,
		PaymentStatus:       constants.PaymentStatusPaid,
	}

	orderID, err := srv.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.logger.Info("Order placed",
		slog.String("order_id", orderID),
		slog.String("buyer_uid", buyer.UID),
		slog.Int64("total_paise", order.TotalAmountPaise),
	)

	// The order exists; a cart-clear failure must not undo the checkout.
	if err := srv.cartRepo.Clear(ctx, buyer.UID); err != nil {
		srv.logger.Warn("Failed to clear cart after checkout",
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
	}

	srv.publishEvent(ctx, service.OrderEventCreated, order)

	return order, nil
}

// GetForBuyer returns one of the buyer's own orders. Someone else's order is
// reported as not found.
func (srv *orderService) GetForBuyer(ctx context.Context, buyerUID, orderID string) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerUID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	}

	return order, nil
}

// ListForBuyer returns the buyer's orders, newest first.
func (srv *orderService) ListForBuyer(ctx context.Context, buyerUID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByBuyer(ctx, buyerUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	return orders, nil
}

// ListForArtisan returns the artisan's work queue, oldest first, with each
// order annotated with the artisan's own item subset.
func (srv *orderService) ListForArtisan(ctx context.Context, artisanUID string) ([]*usecase.ArtisanOrderView, error) {
	orders, err := srv.orderRepo.ListByArtisan(ctx, artisanUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artisan orders")
	}

	views := make([]*usecase.ArtisanOrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, &usecase.ArtisanOrderView{
			Order:    order,
			OwnItems: order.ItemsForArtisan(artisanUID),
		})
	}

	return views, nil
}

// ListActiveForAdmin returns orders in the delivery pipeline, oldest first.
func (srv *orderService) ListActiveForAdmin(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByStatuses(ctx, entity.AdminActiveStatuses())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active orders")
	}

	return orders, nil
}

// MarkReadyForPickup performs the artisan's single allowed transition on an
// order containing their items.
func (srv *orderService) MarkReadyForPickup(ctx context.Context, artisanUID, orderID string) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Involves(artisanUID) {
		return nil, errors.Wrap(domainerrors.ErrOrderOwnership, "order has no items from this artisan")
	}
	if !entity.ArtisanCanTransition(order.Status, entity.StatusReadyForPickup) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition,
			"cannot move order from %q to %q", order.Status, entity.StatusReadyForPickup)
	}

	return srv.transition(ctx, order, entity.StatusReadyForPickup)
}

// AdvanceStatus performs an admin transition through the delivery leg.
func (srv *orderService) AdvanceStatus(ctx context.Context, orderID string, to entity.OrderStatus) (*entity.Order, error) {
	if !to.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status %q", to)
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !entity.AdminCanTransition(order.Status, to) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition,
			"cannot move order from %q to %q", order.Status, to)
	}

	return srv.transition(ctx, order, to)
}

func (srv *orderService) findOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) transition(ctx context.Context, order *entity.Order, to entity.OrderStatus) (*entity.Order, error) {
	if err := srv.orderRepo.UpdateStatus(ctx, order.ID, to); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.logger.Info("Order status changed",
		slog.String("order_id", order.ID),
		slog.String("from", order.Status.String()),
		slog.String("to", to.String()),
	)

	order.Status = to
	srv.publishEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// publishEvent emits an order lifecycle event. Publishing is best-effort: the
// state change already happened, so a broker failure is logged, not returned.
func (srv *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		BuyerID:    order.BuyerID,
		ArtisanIDs: order.ArtisanIDs,
		Status:     order.Status.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Error("Failed to publish order event",
			slog.String("event_id", event.EventID),
			slog.String("type", eventType),
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
