package repository

import (
	"context"
	"errors"

	"haven/internal/domain/entity"
)

// ErrProductNotFound is returned when a product document does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by document ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product and returns its generated ID.
	Create(ctx context.Context, product *entity.Product) (string, error)

	// Update replaces the mutable fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product document.
	Delete(ctx context.Context, id string) error

	// ListVerified returns all publicly visible products (isVerified == true).
	ListVerified(ctx context.Context) ([]*entity.Product, error)

	// ListPending returns products awaiting admin review (isVerified == false).
	ListPending(ctx context.Context) ([]*entity.Product, error)

	// ListByArtisan returns every product owned by the artisan, verified or not.
	ListByArtisan(ctx context.Context, artisanUID string) ([]*entity.Product, error)

	// ListVerifiedByArtisan returns the artisan's publicly visible products.
	ListVerifiedByArtisan(ctx context.Context, artisanUID string) ([]*entity.Product, error)

	// SetVerified marks a product as reviewed; approval is one-way.
	SetVerified(ctx context.Context, id string, verified bool) error
}
