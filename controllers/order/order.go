package orderControllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noOne-33/stylora-api/apperr"
	couponControllers "github.com/noOne-33/stylora-api/controllers/coupon"
	"github.com/noOne-33/stylora-api/models"
	"github.com/noOne-33/stylora-api/pricing"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	ShippingAddress models.Address `json:"shippingAddress" binding:"required"`
	PaymentMethod   string         `json:"paymentMethod" binding:"required"`
	CouponCode      string         `json:"couponCode"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// mapOrderStatus validates a client-supplied status string against the enum.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
		models.OrderStatusFailed:
		return models.OrderStatus(status), nil
	default:
		return "", apperr.Newf(apperr.Invalid, "Invalid order status %q", status)
	}
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// Checkout snapshots the user's cart into an order. The order insert is the
// commit point: the coupon usage increment and the cart clear that follow
// are best effort and not transactional with it.
func Checkout(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, req CheckoutRequest) (models.Order, error) {
	var order models.Order

	var cart models.Cart
	if err := db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			return order, apperr.New(apperr.Invalid, "Cart is empty")
		}
		return order, apperr.Wrap(apperr.Internal, "Failed to fetch cart", err)
	}
	if len(cart.Items) == 0 {
		return order, apperr.New(apperr.Invalid, "Cart is empty")
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		subtotal += item.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Color:     item.Color,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}
	subtotal = pricing.Round2(subtotal)

	var couponDiscount float64
	couponCode := ""
	if req.CouponCode != "" {
		coupon, err := couponControllers.ValidateCoupon(ctx, db, req.CouponCode, subtotal)
		if err != nil {
			return order, err
		}
		couponCode = coupon.Code
		couponDiscount = pricing.CouponDiscount(subtotal, coupon.DiscountType, coupon.DiscountValue)
	}

	order = models.Order{
		OrderRef:             generateOrderRef(),
		UserID:               userID,
		Items:                items,
		Subtotal:             subtotal,
		AppliedCouponCode:    couponCode,
		CouponDiscountAmount: couponDiscount,
		TotalAmount:          pricing.Round2(subtotal - couponDiscount),
		ShippingAddress:      req.ShippingAddress,
		PaymentMethod:        req.PaymentMethod,
		Status:               models.OrderStatusPending,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	res, err := db.Collection("orders").InsertOne(ctx, order)
	if err != nil {
		return order, apperr.Wrap(apperr.Internal, "Failed to create order", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)

	// Post-commit bookkeeping. Failures here leave durable but
	// inconsistent state; they are logged, not rolled back.
	if couponCode != "" {
		if err := couponControllers.IncrementUsage(ctx, db, couponCode); err != nil {
			log.Println("❌ Failed to record coupon usage for order", order.OrderRef, ":", err)
		}
	}
	if _, err := db.Collection("carts").UpdateOne(ctx,
		bson.M{"_id": cart.ID},
		bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now()}},
	); err != nil {
		log.Println("❌ Failed to clear cart after order", order.OrderRef, ":", err)
	}

	return order, nil
}

// CancelOrder performs a user-initiated cancellation, allowed only while
// the order is still Pending or Processing.
func CancelOrder(ctx context.Context, db *mongo.Database, userID, orderID primitive.ObjectID) error {
	var order models.Order
	err := db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID, "userId": userID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.New(apperr.NotFound, "Order not found")
		}
		return apperr.Wrap(apperr.Internal, "Failed to fetch order", err)
	}

	if !order.Status.CanCancel() {
		return apperr.Newf(apperr.Forbidden, "Cannot cancel an order in status %q", order.Status)
	}

	_, err = db.Collection("orders").UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"orderStatus": models.OrderStatusCancelled, "updatedAt": time.Now()}},
	)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to cancel order", err)
	}
	return nil
}

// -------- Handlers --------

// POST /user/orders
func CheckoutHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := Checkout(c.Request.Context(), db, userID, req)
		if err != nil {
			c.JSON(apperr.StatusOf(err), gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		cursor, err := db.Collection("orders").Find(c.Request.Context(),
			bson.M{"userId": userID},
			options.Find().SetSort(bson.M{"createdAt": -1}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		orders := []models.Order{}
		if err := cursor.All(c.Request.Context(), &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
func GetOrderByIDHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		orderID, ok := models.ParseID(c.Param("orderID"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		filter := bson.M{"_id": orderID}
		if role, _ := c.Get("role"); role != models.RoleAdmin {
			filter["userId"] = userID // owners only
		}

		var order models.Order
		if err := db.Collection("orders").FindOne(c.Request.Context(), filter).Decode(&order); err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /user/orders/:orderID/cancel
func CancelOrderHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		orderID, ok := models.ParseID(c.Param("orderID"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		if err := CancelOrder(c.Request.Context(), db, userID, orderID); err != nil {
			c.JSON(apperr.StatusOf(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := db.Collection("orders").Find(c.Request.Context(), bson.M{},
			options.Find().SetSort(bson.M{"createdAt": -1}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		orders := []models.Order{}
		if err := cursor.All(c.Request.Context(), &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
// Admin may move an order to any status in the enum; no transition graph
// is enforced.
func UpdateOrderStatusHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := models.ParseID(c.Param("orderID"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(apperr.StatusOf(err), gin.H{"error": err.Error()})
			return
		}

		res, err := db.Collection("orders").UpdateOne(c.Request.Context(),
			bson.M{"_id": orderID},
			bson.M{"$set": bson.M{"orderStatus": newStatus, "updatedAt": time.Now()}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

func contextUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return primitive.NilObjectID, false
	}
	userID, ok := models.ParseID(userIDVal.(string))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier"})
		return primitive.NilObjectID, false
	}
	return userID, true
}
