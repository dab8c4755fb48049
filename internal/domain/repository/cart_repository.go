package repository

import (
	"context"

	"haven/internal/domain/entity"
)

// CartRepository defines the operations for cart persistence. The cart
// document is keyed by its owner's UID; a missing document is an empty cart,
// never an error.
type CartRepository interface {
	// Get returns the owner's cart, or an empty cart when none is stored.
	Get(ctx context.Context, ownerUID string) (*entity.Cart, error)

	// Save overwrites the owner's cart document.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear deletes the owner's cart document.
	Clear(ctx context.Context, ownerUID string) error
}
