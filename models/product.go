package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discount types a product (or coupon) may carry. An empty DiscountType
// means the product sells at its base price.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	DiscountType  string             `bson:"discountType,omitempty" json:"discountType,omitempty"`
	DiscountValue float64            `bson:"discountValue,omitempty" json:"discountValue,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Images        []string           `bson:"images" json:"images"`
	Colors        []string           `bson:"colors" json:"colors"`
	Sizes         []string           `bson:"sizes" json:"sizes"`
	Stock         int                `bson:"stock" json:"stock"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
