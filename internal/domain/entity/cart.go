package entity

import "time"

// CartItem is one product line in a cart. Product fields are copied in when
// the item is added; the cart does not chase later product edits.
type CartItem struct {
	ProductID  string `firestore:"productId" json:"productId"`
	ArtisanID  string `firestore:"artisanId" json:"artisanId"`
	Name       string `firestore:"name" json:"name"`
	PricePaise int64  `firestore:"pricePaise" json:"pricePaise"`
	ImageURL   string `firestore:"imageUrl" json:"imageUrl"`
	Quantity   int    `firestore:"quantity" json:"quantity"`
}

// Cart is the pre-checkout line-item set for one session, persisted per owner
// in the carts collection so it survives reloads. Items are keyed by product
// ID: adding an existing product increments its quantity in place.
type Cart struct {
	OwnerUID  string     `firestore:"-" json:"ownerUid"`
	Items     []CartItem `firestore:"items" json:"items"`
	UpdatedAt time.Time  `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// Add appends the product as a new line, or bumps the quantity when the
// product is already in the cart.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity++

			return
		}
	}

	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity for a product; a quantity of zero or less
// removes the line entirely.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)

		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity

			return
		}
	}
}

// Remove deletes the line for a product, if present.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return
		}
	}
}

// Clear empties the cart; called after a successful checkout.
func (c *Cart) Clear() {
	c.Items = nil
}

// Count is the sum of line quantities.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// TotalPaise is the sum of price times quantity across all lines.
func (c *Cart) TotalPaise() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PricePaise * int64(item.Quantity)
	}

	return total
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ArtisanIDs returns the distinct artisan IDs across all lines, in first-seen
// order. Checkout stores this on the order so artisan dashboards can filter
// with a single array-contains query.
func (c *Cart) ArtisanIDs() []string {
	seen := make(map[string]struct{}, len(c.Items))
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		if _, ok := seen[item.ArtisanID]; ok {
			continue
		}
		seen[item.ArtisanID] = struct{}{}
		ids = append(ids, item.ArtisanID)
	}

	return ids
}
