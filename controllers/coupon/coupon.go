package couponControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/apperr"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CouponInput struct {
	Code              string    `json:"code" binding:"required"`
	DiscountType      string    `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue     float64   `json:"discountValue" binding:"required,gt=0"`
	MinPurchaseAmount float64   `json:"minPurchaseAmount" binding:"min=0"`
	ExpiryDate        time.Time `json:"expiryDate" binding:"required"`
	UsageLimit        int       `json:"usageLimit" binding:"min=0"`
}

type ValidateInput struct {
	Code         string  `json:"code" binding:"required"`
	CartSubtotal float64 `json:"cartSubtotal" binding:"min=0"`
}

// POST /user/coupons/validate
func ValidateCouponHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ValidateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		coupon, err := ValidateCoupon(c.Request.Context(), db, input.Code, input.CartSubtotal)
		if err != nil {
			c.JSON(apperr.StatusOf(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"code":              coupon.Code,
			"discountType":      coupon.DiscountType,
			"discountValue":     coupon.DiscountValue,
			"minPurchaseAmount": coupon.MinPurchaseAmount,
		})
	}
}

// POST /admin/coupons
func CreateCoupon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		coupon := models.Coupon{
			Code:              normalizeCode(input.Code),
			DiscountType:      input.DiscountType,
			DiscountValue:     input.DiscountValue,
			MinPurchaseAmount: input.MinPurchaseAmount,
			ExpiryDate:        input.ExpiryDate,
			UsageLimit:        input.UsageLimit,
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		}

		res, err := db.Collection("coupons").InsertOne(c.Request.Context(), coupon)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		coupon.ID = res.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, coupon)
	}
}

// GET /admin/coupons
func GetCoupons(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := db.Collection("coupons").Find(c.Request.Context(), bson.M{},
			options.Find().SetSort(bson.M{"createdAt": -1}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}

		coupons := []models.Coupon{}
		if err := cursor.All(c.Request.Context(), &coupons); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// PUT /admin/coupons/:id
func UpdateCoupon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		update := bson.M{"$set": bson.M{
			"code":              normalizeCode(input.Code),
			"discountType":      input.DiscountType,
			"discountValue":     input.DiscountValue,
			"minPurchaseAmount": input.MinPurchaseAmount,
			"expiryDate":        input.ExpiryDate,
			"usageLimit":        input.UsageLimit,
			"updatedAt":         time.Now(),
		}}

		res, err := db.Collection("coupons").UpdateOne(c.Request.Context(), bson.M{"_id": id}, update)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Coupon updated"})
	}
}

// DELETE /admin/coupons/:id
func DeleteCoupon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
			return
		}

		res, err := db.Collection("coupons").DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
