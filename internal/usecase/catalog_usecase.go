package usecase

import (
	"context"

	"haven/internal/domain/entity"
)

// CatalogUsecase defines product management and discovery operations.
// Artisans manage their own listings; buyers see only verified products;
// admins review the pending queue.
type CatalogUsecase interface {
	// CreateProduct creates an unverified listing owned by the artisan.
	CreateProduct(ctx context.Context, artisan *entity.User, input *ProductInput) (*entity.Product, error)

	// UpdateProduct edits an owned listing. Verification state is untouched.
	UpdateProduct(ctx context.Context, artisanUID, productID string, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes an owned listing.
	DeleteProduct(ctx context.Context, artisanUID, productID string) error

	// ListOwnProducts returns all of the artisan's listings, verified or not.
	ListOwnProducts(ctx context.Context, artisanUID string) ([]*entity.Product, error)

	// ListPublic returns all verified products, newest first.
	ListPublic(ctx context.Context) ([]*entity.Product, error)

	// GetPublic returns a verified product; unverified ones are not found.
	GetPublic(ctx context.Context, productID string) (*entity.Product, error)

	// GetArtisanPage returns an artisan's public profile with their verified
	// products.
	GetArtisanPage(ctx context.Context, artisanUID string) (*ArtisanPage, error)

	// ListPendingProducts returns the admin review queue, oldest first.
	ListPendingProducts(ctx context.Context) ([]*entity.Product, error)

	// ApproveProduct marks a product verified. Approval is one-way.
	ApproveProduct(ctx context.Context, productID string) error
}

// --- Input / output DTOs ---

// ProductInput defines the data required to create or edit a product.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	PricePaise  int64    `json:"pricePaise" validate:"gte=0"`
	ImageURLs   []string `json:"imageUrls" validate:"required,min=1,dive,url"`
}

// ArtisanPage is an artisan's public storefront: profile plus verified
// products.
type ArtisanPage struct {
	UID         string            `json:"uid"`
	DisplayName string            `json:"displayName"`
	PhotoURL    string            `json:"photoURL,omitempty"`
	Story       string            `json:"story,omitempty"`
	IsVerified  bool              `json:"isVerified"`
	Products    []*entity.Product `json:"products"`
}
