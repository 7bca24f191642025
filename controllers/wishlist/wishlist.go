package wishlistControllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WishlistItemInput struct {
	ProductID string `json:"productId" binding:"required"`
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

func loadOrCreateWishlist(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) (models.Wishlist, error) {
	var list models.Wishlist
	err := db.Collection("wishlists").FindOne(ctx, bson.M{"userId": userID}).Decode(&list)
	if err == nil {
		return list, nil
	}
	if err != mongo.ErrNoDocuments {
		return list, err
	}

	list = models.Wishlist{
		UserID:     userID,
		ProductIDs: []primitive.ObjectID{},
		UpdatedAt:  time.Now(),
	}
	res, err := db.Collection("wishlists").InsertOne(ctx, list)
	if err != nil {
		return list, err
	}
	list.ID = res.InsertedID.(primitive.ObjectID)
	return list, nil
}

// GET /user/wishlist
func GetWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		list, err := loadOrCreateWishlist(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		// resolve product documents for the storefront
		products := []models.Product{}
		if len(list.ProductIDs) > 0 {
			cursor, err := db.Collection("products").Find(c.Request.Context(),
				bson.M{"_id": bson.M{"$in": list.ProductIDs}})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist products"})
				return
			}
			if err := cursor.All(c.Request.Context(), &products); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode wishlist products"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"wishlist": list, "products": products})
	}
}

// POST /user/wishlist
func AddWishlistItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		var input WishlistItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		productID, ok := models.ParseID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		list, err := loadOrCreateWishlist(c.Request.Context(), db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		// $addToSet keeps set semantics: adding twice is a no-op
		_, err = db.Collection("wishlists").UpdateOne(c.Request.Context(),
			bson.M{"_id": list.ID},
			bson.M{
				"$addToSet": bson.M{"productIds": productID},
				"$set":      bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
	}
}

// DELETE /user/wishlist/:productId
func RemoveWishlistItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		productID, ok := models.ParseID(c.Param("productId"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		res, err := db.Collection("wishlists").UpdateOne(c.Request.Context(),
			bson.M{"userId": userID},
			bson.M{
				"$pull": bson.M{"productIds": productID},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}
