package pricing

import (
	"testing"

	"github.com/noOne-33/stylora-api/models"
	"github.com/stretchr/testify/assert"
)

func TestEffectivePricePercentage(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		value float64
		want  float64
	}{
		{"20 percent off 100", 100, 20, 80},
		{"lower bound", 100, 1, 99},
		{"upper bound", 100, 99, 1},
		{"below range ignored", 100, 0.5, 100},
		{"above range ignored", 100, 100, 100},
		{"negative ignored", 100, -10, 100},
		{"rounds to cents", 19.99, 15, 16.99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EffectivePrice(tc.price, models.DiscountPercentage, tc.value)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEffectivePriceFixed(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		value float64
		want  float64
	}{
		{"simple", 100, 30, 70},
		{"equal to price ignored", 100, 100, 100},
		{"above price ignored", 100, 150, 100},
		{"zero ignored", 100, 0, 100},
		{"negative ignored", 100, -5, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EffectivePrice(tc.price, models.DiscountFixed, tc.value)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEffectivePriceNoDiscount(t *testing.T) {
	assert.Equal(t, 49.99, EffectivePrice(49.99, "", 20))
	assert.Equal(t, 49.99, EffectivePrice(49.99, "bogo", 20))
}

func TestDiscountText(t *testing.T) {
	assert.Equal(t, "20% OFF", DiscountText(100, models.DiscountPercentage, 20))
	assert.Equal(t, "$30 OFF", DiscountText(100, models.DiscountFixed, 30))

	// invalid discounts carry no badge
	assert.Equal(t, "", DiscountText(100, models.DiscountFixed, 150))
	assert.Equal(t, "", DiscountText(100, models.DiscountPercentage, 0))
	assert.Equal(t, "", DiscountText(100, "", 20))
}

func TestCouponDiscount(t *testing.T) {
	assert.Equal(t, 25.0, CouponDiscount(250, models.DiscountPercentage, 10))
	assert.Equal(t, 50.0, CouponDiscount(250, models.DiscountFixed, 50))

	// neither kind ever exceeds the subtotal, so totals stay non-negative
	assert.Equal(t, 40.0, CouponDiscount(40, models.DiscountFixed, 100))
	assert.Equal(t, 100.0, CouponDiscount(100, models.DiscountPercentage, 150))
	assert.GreaterOrEqual(t, 100.0-CouponDiscount(100, models.DiscountPercentage, 150), 0.0)

	assert.Equal(t, 0.0, CouponDiscount(250, "", 50))
}
