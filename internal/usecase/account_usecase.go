// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"haven/internal/domain/entity"
	"haven/internal/domain/service"
)

// AccountUsecase defines the profile resolution and account mutation
// operations. The resolved profile merges the provider-asserted identity with
// the user document; a missing document resolves to explicit defaults, never
// a partial shape.
type AccountUsecase interface {
	// Register creates the user document with an explicitly chosen role.
	// Fails with a conflict when the document already exists; the role is
	// assigned exactly once.
	Register(ctx context.Context, identity *service.Identity, input *RegisterInput) (*entity.User, error)

	// EnsureProfile creates the user document with the buyer role if it does
	// not exist yet, then returns the resolved profile. Social sign-in calls
	// this on first arrival.
	EnsureProfile(ctx context.Context, identity *service.Identity) (*entity.User, error)

	// Resolve merges the identity with the stored document. A missing document
	// yields a profile with an empty role and all flags false.
	Resolve(ctx context.Context, identity *service.Identity) (*entity.User, error)

	// Watch streams resolved profiles as the user document changes, until ctx
	// is cancelled. Exactly one store subscription per call.
	Watch(ctx context.Context, identity *service.Identity) (<-chan *entity.User, error)

	// UpdateShippingAddress saves the buyer's delivery address.
	UpdateShippingAddress(ctx context.Context, uid string, input *ShippingAddressInput) error

	// UpdateStory saves the artisan's story text.
	UpdateStory(ctx context.Context, uid string, story string) error
}

// --- Input DTOs ---

// RegisterInput defines the data required to register an account.
type RegisterInput struct {
	Role        string `json:"role" validate:"required,oneof=buyer artisan"`
	DisplayName string `json:"displayName,omitempty"`
}

// ShippingAddressInput defines the data required to save a shipping address.
type ShippingAddressInput struct {
	Name    string `json:"name" validate:"required"`
	Line1   string `json:"line1" validate:"required"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}
