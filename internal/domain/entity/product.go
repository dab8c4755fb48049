package entity

import "time"

// Product is a listing owned by one artisan. A product is visible on any
// public surface only once an admin has verified it.
type Product struct {
	ID        string `firestore:"-" json:"id"`
	ArtisanID string `firestore:"artisanId" json:"artisanId"`

	// ArtisanName is denormalized at creation time and not re-synced when the
	// artisan later renames their account.
	ArtisanName string `firestore:"artisanName" json:"artisanName"`

	Name        string `firestore:"name" json:"name"`
	Description string `firestore:"description" json:"description"`

	// PricePaise is the unit price in paise (1/100 rupee); never negative.
	PricePaise int64 `firestore:"pricePaise" json:"pricePaise"`

	// ImageURLs holds at least one image; the first is the cover image and the
	// one snapshotted onto order items.
	ImageURLs []string `firestore:"imageUrls" json:"imageUrls"`

	// IsVerified flips false -> true through admin approval; there is no
	// un-approve path. Owner edits do not reset it.
	IsVerified bool `firestore:"isVerified" json:"isVerified"`

	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// CoverImageURL returns the first image, the one shown in listings and
// snapshotted onto orders.
func (p *Product) CoverImageURL() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}

	return p.ImageURLs[0]
}

// OwnedBy reports whether the given artisan owns this product.
func (p *Product) OwnedBy(artisanUID string) bool {
	return p.ArtisanID == artisanUID
}
