package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateProduct replaces the editable fields of a product.
// URL param: /admin/products/:id
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		update := bson.M{"$set": bson.M{
			"name":          input.Name,
			"description":   input.Description,
			"price":         input.Price,
			"discountType":  input.DiscountType,
			"discountValue": input.DiscountValue,
			"category":      input.Category,
			"images":        input.Images,
			"colors":        input.Colors,
			"sizes":         input.Sizes,
			"stock":         input.Stock,
			"updatedAt":     time.Now(),
		}}

		res, err := db.Collection("products").UpdateOne(c.Request.Context(), bson.M{"_id": id}, update)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}
