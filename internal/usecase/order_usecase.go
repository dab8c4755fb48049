package usecase

import (
	"context"

	"haven/internal/domain/entity"
)

// OrderUsecase defines checkout and the three role-specific order views, plus
// the two guarded status transitions.
type OrderUsecase interface {
	// Checkout converts the buyer's cart into an order: items snapshotted,
	// totals computed once, status Packaging. Requires a non-empty cart and a
	// saved shipping address; on failure the cart is untouched. The cart is
	// cleared after the order is written and an order.created event is
	// published.
	Checkout(ctx context.Context, buyer *entity.User) (*entity.Order, error)

	// GetForBuyer returns one of the buyer's own orders.
	GetForBuyer(ctx context.Context, buyerUID, orderID string) (*entity.Order, error)

	// ListForBuyer returns the buyer's orders, newest first.
	ListForBuyer(ctx context.Context, buyerUID string) ([]*entity.Order, error)

	// ListForArtisan returns orders containing the artisan's items, oldest
	// first, each annotated with the artisan's own item subset.
	ListForArtisan(ctx context.Context, artisanUID string) ([]*ArtisanOrderView, error)

	// ListActiveForAdmin returns orders in the delivery pipeline (Ready for
	// Pickup, Shipped, Out for Delivery), oldest first.
	ListActiveForAdmin(ctx context.Context) ([]*entity.Order, error)

	// MarkReadyForPickup performs the artisan's single allowed transition,
	// Packaging to Ready for Pickup, on an order containing their items.
	MarkReadyForPickup(ctx context.Context, artisanUID, orderID string) (*entity.Order, error)

	// AdvanceStatus performs an admin transition. Forward jumps over
	// intermediate stages are allowed; regressions and touching Packaging or
	// Delivered orders are not.
	AdvanceStatus(ctx context.Context, orderID string, to entity.OrderStatus) (*entity.Order, error)
}

// --- Output DTOs ---

// ArtisanOrderView is one order as seen from an artisan's dashboard: the full
// order plus the subset of items the artisan owns.
type ArtisanOrderView struct {
	Order    *entity.Order      `json:"order"`
	OwnItems []entity.OrderItem `json:"ownItems"`
}
