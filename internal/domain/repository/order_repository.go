package repository

import (
	"context"
	"errors"

	"haven/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order document does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence. Orders are
// created whole and only their status field is ever updated.
type OrderRepository interface {
	// FindByID retrieves a single order by document ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Create persists a new order in a single write and returns its ID.
	Create(ctx context.Context, order *entity.Order) (string, error)

	// ListByBuyer returns the buyer's orders, newest first.
	ListByBuyer(ctx context.Context, buyerUID string) ([]*entity.Order, error)

	// ListByArtisan returns orders containing the artisan's items, oldest
	// first, so unresolved work surfaces at the top of the queue.
	ListByArtisan(ctx context.Context, artisanUID string) ([]*entity.Order, error)

	// ListByStatuses returns orders in any of the given statuses, oldest
	// first; the admin delivery dashboard feeds from this.
	ListByStatuses(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error)

	// UpdateStatus sets the status field only. Last write wins; callers are
	// expected to have checked the transition table first.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
