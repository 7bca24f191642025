package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"    // order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "Processing" // confirmed, being prepared
	OrderStatusShipped    OrderStatus = "Shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // customer received the items
	OrderStatusCancelled  OrderStatus = "Cancelled"  // cancelled before shipping
	OrderStatusFailed     OrderStatus = "Failed"     // payment or fulfilment failed
)

// CanCancel reports whether a user-initiated cancellation is still allowed.
// Once an order is shipped (or already terminal) only an admin can touch it.
func (s OrderStatus) CanCancel() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

type Order struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderRef             string             `bson:"orderRef" json:"orderRef"`
	UserID               primitive.ObjectID `bson:"userId" json:"userId"`
	Items                []OrderItem        `bson:"items" json:"items"` // immutable snapshot
	Subtotal             float64            `bson:"subtotal" json:"subtotal"`
	AppliedCouponCode    string             `bson:"appliedCouponCode,omitempty" json:"appliedCouponCode,omitempty"`
	CouponDiscountAmount float64            `bson:"couponDiscountAmount,omitempty" json:"couponDiscountAmount,omitempty"`
	TotalAmount          float64            `bson:"totalAmount" json:"totalAmount"`
	ShippingAddress      Address            `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod        string             `bson:"paymentMethod" json:"paymentMethod"` // e.g. "card", "cod"
	Status               OrderStatus        `bson:"orderStatus" json:"orderStatus"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price" json:"price"` // effective unit price at checkout
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
