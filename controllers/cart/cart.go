package cartControllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"github.com/noOne-33/stylora-api/pricing"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type SetQuantityInput struct {
	CartKey  string `json:"cartKey" binding:"required"`
	Quantity int    `json:"quantity"`
}

// loadOrCreateCart fetches the user's cart, creating an empty one on first
// access.
func loadOrCreateCart(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == nil {
		return cart, nil
	}
	if err != mongo.ErrNoDocuments {
		return cart, err
	}

	cart = models.Cart{
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	res, err := db.Collection("carts").InsertOne(ctx, cart)
	if err != nil {
		return cart, err
	}
	cart.ID = res.InsertedID.(primitive.ObjectID)
	return cart, nil
}

func saveItems(ctx context.Context, db *mongo.Database, cartID primitive.ObjectID, items []models.CartItem) error {
	_, err := db.Collection("carts").UpdateOne(ctx,
		bson.M{"_id": cartID},
		bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now()}},
	)
	return err
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

// GET /user/cart
func GetUserCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		cart, err := loadOrCreateCart(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": cart, "subtotal": pricing.Round2(subtotal(cart.Items))})
	}
}

// POST /user/cart
func AddCartItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		productID, ok := models.ParseID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		// Fetch product to snapshot name, image and effective price
		var product models.Product
		err := db.Collection("products").FindOne(c.Request.Context(), bson.M{"_id": productID}).Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart, err := loadOrCreateCart(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		item := models.CartItem{
			ProductID: product.ID,
			CartKey:   models.MakeCartKey(product.ID, input.Color, input.Size),
			Name:      product.Name,
			Image:     image,
			Price:     pricing.EffectivePrice(product.Price, product.DiscountType, product.DiscountValue),
			Color:     input.Color,
			Size:      input.Size,
			Quantity:  input.Quantity,
			AddedAt:   time.Now(),
		}

		items := mergeItem(cart.Items, item)
		if err := saveItems(c.Request.Context(), db, cart.ID, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"items": items, "subtotal": pricing.Round2(subtotal(items))})
	}
}

// PUT /user/cart
func SetCartItemQuantity(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := loadOrCreateCart(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		items := setQuantity(cart.Items, input.CartKey, input.Quantity)
		if err := saveItems(c.Request.Context(), db, cart.ID, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "subtotal": pricing.Round2(subtotal(items))})
	}
}

// DELETE /user/cart/:cartKey
func DeleteCartItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		cartKey := c.Param("cartKey")

		cart, err := loadOrCreateCart(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		items := removeItem(cart.Items, cartKey)
		if len(items) == len(cart.Items) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if err := saveItems(c.Request.Context(), db, cart.ID, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "subtotal": pricing.Round2(subtotal(items))})
	}
}

// DELETE /user/cart
func ClearUserCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		cart, err := loadOrCreateCart(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := saveItems(c.Request.Context(), db, cart.ID, []models.CartItem{}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:id
func GetAdminUserCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var cart models.Cart
		err := db.Collection("carts").FindOne(c.Request.Context(), bson.M{"userId": userID}).Decode(&cart)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}
