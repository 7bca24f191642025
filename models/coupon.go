package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coupon struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code              string             `bson:"code" json:"code"` // unique, stored upper-case
	DiscountType      string             `bson:"discountType" json:"discountType"`
	DiscountValue     float64            `bson:"discountValue" json:"discountValue"`
	MinPurchaseAmount float64            `bson:"minPurchaseAmount" json:"minPurchaseAmount"`
	ExpiryDate        time.Time          `bson:"expiryDate" json:"expiryDate"`
	UsageLimit        int                `bson:"usageLimit,omitempty" json:"usageLimit,omitempty"` // not enforced yet
	UsageCount        int                `bson:"usageCount" json:"usageCount"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
