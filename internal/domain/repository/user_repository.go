// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"haven/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user document
// does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned by Create when a document already holds
// the UID.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserRepository defines the standard operations for user persistence. The
// document key is the provider-issued UID.
type UserRepository interface {
	// FindByUID retrieves a single user document by UID.
	FindByUID(ctx context.Context, uid string) (*entity.User, error)

	// Create persists a new user document keyed by UID. Fails when the
	// document already exists, so a role can never be reassigned by
	// re-registering.
	Create(ctx context.Context, user *entity.User) error

	// UpdateShippingAddress replaces the saved shipping address.
	UpdateShippingAddress(ctx context.Context, uid string, address *entity.ShippingAddress) error

	// UpdateArtisanStory replaces the artisan's story text.
	UpdateArtisanStory(ctx context.Context, uid string, story string) error

	// UpdateBrandKit replaces the stored brand kit.
	UpdateBrandKit(ctx context.Context, uid string, kit *entity.BrandKit) error

	// SetVerifiedArtisan flips the isVerifiedArtisan flag; only the admin
	// verification approval path calls this.
	SetVerifiedArtisan(ctx context.Context, uid string, verified bool) error

	// Watch streams successive states of the user document until ctx is
	// cancelled. The returned channel is closed when the subscription ends.
	Watch(ctx context.Context, uid string) (<-chan *entity.User, error)
}
