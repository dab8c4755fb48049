package entity

import "time"

// User is the application-side record for an authenticated identity. The
// document ID in the users collection is the provider-issued UID, so identity
// and profile are joined by key, never by query.
type User struct {
	UID         string `firestore:"-" json:"uid"`
	DisplayName string `firestore:"displayName" json:"displayName"`
	Email       string `firestore:"email" json:"email"`
	PhotoURL    string `firestore:"photoURL,omitempty" json:"photoURL,omitempty"`

	// Role is assigned once at registration and is not user-editable.
	Role Role `firestore:"role" json:"role"`

	// IsVerifiedArtisan becomes true only through an admin approving the
	// artisan's verification submission.
	IsVerifiedArtisan bool `firestore:"isVerifiedArtisan" json:"isVerifiedArtisan"`

	// IsAdmin is never settable through any exposed operation; it is granted
	// out-of-band directly in the document store.
	IsAdmin bool `firestore:"isAdmin" json:"isAdmin"`

	ShippingAddress *ShippingAddress `firestore:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
	ArtisanStory    string           `firestore:"artisanStory,omitempty" json:"artisanStory,omitempty"`
	BrandKit        *BrandKit        `firestore:"brandKit,omitempty" json:"brandKit,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// ShippingAddress is the buyer's saved delivery address. Orders snapshot it at
// checkout; later edits never touch placed orders.
type ShippingAddress struct {
	Name    string `firestore:"name" json:"name"`
	Line1   string `firestore:"line1" json:"line1" validate:"required"`
	Line2   string `firestore:"line2,omitempty" json:"line2,omitempty"`
	City    string `firestore:"city" json:"city" validate:"required"`
	State   string `firestore:"state" json:"state" validate:"required"`
	Pincode string `firestore:"pincode" json:"pincode" validate:"required"`
	Phone   string `firestore:"phone" json:"phone" validate:"required"`
}
