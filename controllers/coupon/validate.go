package couponControllers

import (
	"context"
	"strings"
	"time"

	"github.com/noOne-33/stylora-api/apperr"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// checkCoupon applies the validity rules to a loaded coupon. An expired
// coupon is reported the same way as a missing one. The caller computes
// the discount amount from the returned terms; this layer never does.
func checkCoupon(coupon models.Coupon, cartSubtotal float64, now time.Time) error {
	if !coupon.ExpiryDate.IsZero() && now.After(coupon.ExpiryDate) {
		return apperr.New(apperr.NotFound, "Coupon not found or expired")
	}
	if cartSubtotal < coupon.MinPurchaseAmount {
		return apperr.Newf(apperr.Invalid,
			"Minimum purchase of %.2f required, cart subtotal is %.2f",
			coupon.MinPurchaseAmount, cartSubtotal)
	}
	return nil
}

// ValidateCoupon looks a coupon up by code and checks it against the cart
// subtotal. On success the coupon terms are returned so checkout can
// compute the discount.
func ValidateCoupon(ctx context.Context, db *mongo.Database, code string, cartSubtotal float64) (models.Coupon, error) {
	var coupon models.Coupon
	err := db.Collection("coupons").FindOne(ctx, bson.M{"code": normalizeCode(code)}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return coupon, apperr.New(apperr.NotFound, "Coupon not found or expired")
		}
		return coupon, apperr.Wrap(apperr.Internal, "Failed to look up coupon", err)
	}
	if err := checkCoupon(coupon, cartSubtotal, time.Now()); err != nil {
		return coupon, err
	}
	return coupon, nil
}

// IncrementUsage records a redemption after the order is durably created.
// Best effort: there is no compensating transaction if the increment fails.
func IncrementUsage(ctx context.Context, db *mongo.Database, code string) error {
	_, err := db.Collection("coupons").UpdateOne(ctx,
		bson.M{"code": normalizeCode(code)},
		bson.M{"$inc": bson.M{"usageCount": 1}},
	)
	return err
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
