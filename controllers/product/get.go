package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"github.com/noOne-33/stylora-api/pricing"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// productView is a Product plus the pricing fields the storefront renders.
type productView struct {
	models.Product
	EffectivePrice float64 `json:"effectivePrice"`
	DiscountText   string  `json:"discountText,omitempty"`
}

func withPricing(p models.Product) productView {
	return productView{
		Product:        p,
		EffectivePrice: pricing.EffectivePrice(p.Price, p.DiscountType, p.DiscountValue),
		DiscountText:   pricing.DiscountText(p.Price, p.DiscountType, p.DiscountValue),
	}
}

// GetProductByID returns a single product with its effective price.
// URL param: /products/:id
func GetProductByID(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Collection("products").FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&product); err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, withPricing(product))
	}
}
