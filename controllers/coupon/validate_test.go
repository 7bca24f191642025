package couponControllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/noOne-33/stylora-api/apperr"
	"github.com/noOne-33/stylora-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCoupon(minPurchase float64, expiry time.Time) models.Coupon {
	return models.Coupon{
		Code:              "SAVE10",
		DiscountType:      models.DiscountPercentage,
		DiscountValue:     10,
		MinPurchaseAmount: minPurchase,
		ExpiryDate:        expiry,
	}
}

func TestCheckCouponValid(t *testing.T) {
	now := time.Now()
	coupon := testCoupon(50, now.Add(24*time.Hour))

	assert.NoError(t, checkCoupon(coupon, 75, now))
	assert.NoError(t, checkCoupon(coupon, 50, now)) // exactly at the minimum
}

func TestCheckCouponExpired(t *testing.T) {
	now := time.Now()
	coupon := testCoupon(0, now.Add(-time.Minute))

	err := checkCoupon(coupon, 100, now)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

func TestCheckCouponMinimumNotMet(t *testing.T) {
	now := time.Now()
	coupon := testCoupon(100, now.Add(24*time.Hour))

	err := checkCoupon(coupon, 42.5, now)
	require.Error(t, err)
	assert.Equal(t, apperr.Invalid, apperr.KindOf(err))

	// the message names both the minimum and the actual subtotal
	assert.Contains(t, err.Error(), "100.00")
	assert.Contains(t, err.Error(), "42.50")
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE10", normalizeCode("  save10 "))
}
