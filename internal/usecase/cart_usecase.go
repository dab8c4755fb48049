package usecase

import (
	"context"

	"haven/internal/domain/entity"
)

// CartUsecase defines the pre-checkout cart operations. The cart is persisted
// per owner so it survives sessions; every mutation returns the saved cart so
// clients render from the authoritative state.
type CartUsecase interface {
	// Get returns the owner's cart; a missing document is an empty cart.
	Get(ctx context.Context, ownerUID string) (*entity.Cart, error)

	// AddItem snapshots the product into the cart, or bumps its quantity when
	// already present. Only verified products can be added.
	AddItem(ctx context.Context, ownerUID, productID string) (*entity.Cart, error)

	// SetQuantity sets a line's quantity; zero or less removes the line.
	SetQuantity(ctx context.Context, ownerUID, productID string, quantity int) (*entity.Cart, error)

	// RemoveItem removes a line from the cart.
	RemoveItem(ctx context.Context, ownerUID, productID string) (*entity.Cart, error)

	// Clear empties the cart.
	Clear(ctx context.Context, ownerUID string) error
}
