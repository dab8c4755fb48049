package entity

import "time"

// OrderStatus is the fulfillment stage of an order. Statuses form a single
// forward sequence; there is no branching and no cancellation path.
type OrderStatus string

const (
	StatusPackaging      OrderStatus = "Packaging"
	StatusReadyForPickup OrderStatus = "Ready for Pickup"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// statusRanks orders the statuses so transitions can be checked for forward
// movement without enumerating every pair.
var statusRanks = map[OrderStatus]int{
	StatusPackaging:      0,
	StatusReadyForPickup: 1,
	StatusShipped:        2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// String returns the wire representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known stages.
func (s OrderStatus) IsValid() bool {
	_, ok := statusRanks[s]

	return ok
}

// Rank returns the position of the status in the fulfillment sequence, or -1
// for an unknown status.
func (s OrderStatus) Rank() int {
	rank, ok := statusRanks[s]
	if !ok {
		return -1
	}

	return rank
}

// Before reports whether s comes strictly earlier than other in the sequence.
func (s OrderStatus) Before(other OrderStatus) bool {
	return s.Rank() >= 0 && other.Rank() >= 0 && s.Rank() < other.Rank()
}

// adminSourceStatuses are the stages the admin delivery dashboard operates on.
var adminSourceStatuses = []OrderStatus{StatusReadyForPickup, StatusShipped, StatusOutForDelivery}

// AdminActiveStatuses returns the statuses shown on the admin delivery
// dashboard: orders handed over by artisans but not yet delivered.
func AdminActiveStatuses() []OrderStatus {
	return append([]OrderStatus(nil), adminSourceStatuses...)
}

// ArtisanCanTransition reports whether an artisan may move an order between
// the two statuses. Artisans have exactly one transition: announcing that a
// packaged order is ready for courier pickup.
func ArtisanCanTransition(from, to OrderStatus) bool {
	return from == StatusPackaging && to == StatusReadyForPickup
}

// AdminCanTransition reports whether an admin may move an order between the
// two statuses. Admins drive the delivery leg and may jump forward over
// intermediate stages (Ready for Pickup straight to Delivered is legal), but
// never backwards and never out of Packaging, which belongs to the artisan.
func AdminCanTransition(from, to OrderStatus) bool {
	if from == StatusPackaging || from == StatusDelivered {
		return false
	}
	switch to {
	case StatusShipped, StatusOutForDelivery, StatusDelivered:
		return from.Before(to)
	default:
		return false
	}
}

// OrderItem is a snapshot of a product line at checkout time. Later product
// edits or deletions never change it.
type OrderItem struct {
	ProductID  string `firestore:"productId" json:"productId"`
	ArtisanID  string `firestore:"artisanId" json:"artisanId"`
	Name       string `firestore:"name" json:"name"`
	PricePaise int64  `firestore:"pricePaise" json:"pricePaise"`
	Quantity   int    `firestore:"quantity" json:"quantity"`
	ImageURL   string `firestore:"imageUrl" json:"imageUrl"`
}

// Order is a single checkout's snapshot of purchased items, shipping address
// and progressing fulfillment status. Only Status is ever mutated after
// creation; everything else is written once.
type Order struct {
	ID      string `firestore:"-" json:"id"`
	BuyerID string `firestore:"buyerId" json:"buyerId"`

	// ArtisanIDs is the distinct set of artisans with items in this order,
	// derived at creation for array-contains dashboard queries.
	ArtisanIDs []string `firestore:"artisanIds" json:"artisanIds"`

	ShippingAddress ShippingAddress `firestore:"shippingAddress" json:"shippingAddress"`
	Items           []OrderItem     `firestore:"items" json:"items"`

	SubtotalPaise       int64 `firestore:"subtotalPaise" json:"subtotalPaise"`
	DeliveryChargePaise int64 `firestore:"deliveryChargePaise" json:"deliveryChargePaise"`
	TotalAmountPaise    int64 `firestore:"totalAmountPaise" json:"totalAmountPaise"`

	Status        OrderStatus `firestore:"status" json:"status"`
	PaymentMethod string      `firestore:"paymentMethod" json:"paymentMethod"`
	PaymentStatus string      `firestore:"paymentStatus" json:"paymentStatus"`

	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// ItemsForArtisan returns the subset of lines owned by the given artisan.
// Artisans see the whole order but act only on their own items.
func (o *Order) ItemsForArtisan(artisanUID string) []OrderItem {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		if item.ArtisanID == artisanUID {
			items = append(items, item)
		}
	}

	return items
}

// Involves reports whether the artisan has at least one item in this order.
func (o *Order) Involves(artisanUID string) bool {
	for _, id := range o.ArtisanIDs {
		if id == artisanUID {
			return true
		}
	}

	return false
}
