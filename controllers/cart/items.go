package cartControllers

import (
	"time"

	"github.com/noOne-33/stylora-api/models"
)

// The cart is mutated read-modify-write: every operation below takes the
// current item list and returns the next one, and the handler writes the
// whole array back. Last write wins under concurrent requests.

// mergeItem adds a line to the cart. An existing line with the same cartKey
// has its quantity increased instead of being duplicated.
func mergeItem(items []models.CartItem, add models.CartItem) []models.CartItem {
	for i, item := range items {
		if item.CartKey == add.CartKey {
			items[i].Quantity += add.Quantity
			items[i].AddedAt = time.Now()
			return items
		}
	}
	return append(items, add)
}

// setQuantity replaces a line's quantity. A quantity of zero or below
// removes the line entirely.
func setQuantity(items []models.CartItem, cartKey string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return removeItem(items, cartKey)
	}
	for i, item := range items {
		if item.CartKey == cartKey {
			items[i].Quantity = quantity
		}
	}
	return items
}

func removeItem(items []models.CartItem, cartKey string) []models.CartItem {
	next := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.CartKey != cartKey {
			next = append(next, item)
		}
	}
	return next
}

// subtotal sums effective unit price times quantity over all lines.
func subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
