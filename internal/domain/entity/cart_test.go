package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vaseLine() CartItem {
	return CartItem{
		ProductID:  "p1",
		ArtisanID:  "artisan-1",
		Name:       "Blue pottery vase",
		PricePaise: 120000,
		ImageURL:   "https://img/p1.jpg",
	}
}

func scarfLine() CartItem {
	return CartItem{
		ProductID:  "p2",
		ArtisanID:  "artisan-2",
		Name:       "Silk scarf",
		PricePaise: 85000,
		ImageURL:   "https://img/p2.jpg",
	}
}

func TestCart_JSONRoundTripPreservesLines(t *testing.T) {
	cart := &Cart{OwnerUID: "buyer-1"}
	cart.Add(vaseLine())
	cart.Add(vaseLine())
	cart.Add(scarfLine())

	raw, err := json.Marshal(cart)
	require.NoError(t, err)

	var rehydrated Cart
	require.NoError(t, json.Unmarshal(raw, &rehydrated))

	// The line-item sequence survives the trip untouched, and the derived
	// totals recompute to the same values from the rehydrated lines alone.
	assert.Equal(t, cart.Items, rehydrated.Items)
	assert.Equal(t, cart.Count(), rehydrated.Count())
	assert.Equal(t, cart.TotalPaise(), rehydrated.TotalPaise())
	assert.Equal(t, 3, rehydrated.Count())
	assert.Equal(t, int64(2*120000+85000), rehydrated.TotalPaise())
}

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	cart := &Cart{OwnerUID: "buyer-1"}
	cart.Add(vaseLine())
	cart.Add(vaseLine())

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	cart := &Cart{OwnerUID: "buyer-1"}
	cart.Add(vaseLine())
	cart.Add(scarfLine())

	cart.SetQuantity("p1", 0)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	cart.Remove("p2")
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Count())
	assert.Zero(t, cart.TotalPaise())
}

func TestCart_TotalsDeriveFromLines(t *testing.T) {
	cart := &Cart{OwnerUID: "buyer-1"}
	cart.Add(vaseLine())
	cart.Add(scarfLine())
	cart.SetQuantity("p2", 4)

	assert.Equal(t, 5, cart.Count())
	assert.Equal(t, int64(120000+4*85000), cart.TotalPaise())
}

func TestCart_ArtisanIDsDistinctFirstSeen(t *testing.T) {
	cart := &Cart{OwnerUID: "buyer-1"}
	cart.Add(vaseLine())
	cart.Add(scarfLine())

	third := vaseLine()
	third.ProductID = "p3" // same artisan as p1
	cart.Add(third)

	assert.Equal(t, []string{"artisan-1", "artisan-2"}, cart.ArtisanIDs())
}
