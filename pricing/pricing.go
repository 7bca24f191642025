// Package pricing holds the discount arithmetic shared by the catalog and
// checkout paths.
package pricing

import (
	"fmt"
	"math"

	"github.com/noOne-33/stylora-api/models"
)

// EffectivePrice computes the selling price for a product discount.
// A percentage discount applies only when the value is in [1,99]; a fixed
// discount only when it is strictly below the price. Anything else falls
// back to the base price without error. Results are rounded to 2 decimals.
func EffectivePrice(price float64, discountType string, discountValue float64) float64 {
	switch discountType {
	case models.DiscountPercentage:
		if discountValue < 1 || discountValue > 99 {
			return Round2(price)
		}
		return Round2(price * (1 - discountValue/100))
	case models.DiscountFixed:
		if discountValue <= 0 || discountValue >= price {
			return Round2(price)
		}
		return Round2(price - discountValue)
	default:
		return Round2(price)
	}
}

// DiscountText returns the badge shown next to a discounted price, or ""
// when the discount does not apply.
func DiscountText(price float64, discountType string, discountValue float64) string {
	switch discountType {
	case models.DiscountPercentage:
		if discountValue < 1 || discountValue > 99 {
			return ""
		}
		return fmt.Sprintf("%g%% OFF", discountValue)
	case models.DiscountFixed:
		if discountValue <= 0 || discountValue >= price {
			return ""
		}
		return fmt.Sprintf("$%g OFF", discountValue)
	default:
		return ""
	}
}

// CouponDiscount computes the amount a validated coupon takes off a cart
// subtotal. Neither kind ever discounts more than the subtotal itself, so
// an order total cannot go negative.
func CouponDiscount(subtotal float64, discountType string, discountValue float64) float64 {
	switch discountType {
	case models.DiscountPercentage:
		discount := subtotal * discountValue / 100
		if discount > subtotal {
			return Round2(subtotal)
		}
		return Round2(discount)
	case models.DiscountFixed:
		if discountValue > subtotal {
			return Round2(subtotal)
		}
		return Round2(discountValue)
	default:
		return 0
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
