package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		res, err := db.Collection("products").DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		// Drop the product from every wishlist. Cart lines keep their
		// snapshot.
		db.Collection("wishlists").UpdateMany(c.Request.Context(),
			bson.M{}, bson.M{"$pull": bson.M{"productIds": id}})

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
