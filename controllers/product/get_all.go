package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Filtering & sorting params
		search := c.Query("search")
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "createdAt")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))

		order := -1
		if sortOrder == "asc" {
			order = 1
		}

		filter := bson.M{}

		// Substring search over name and description, case insensitive
		if search != "" {
			regex := primitive.Regex{Pattern: regexQuoteMeta(search), Options: "i"}
			filter["$or"] = bson.A{
				bson.M{"name": regex},
				bson.M{"description": regex},
			}
		}

		if category != "" {
			filter["category"] = category
		}

		price := bson.M{}
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			price["$gte"] = mp
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			price["$lte"] = mp
		}
		if len(price) > 0 {
			filter["price"] = price
		}

		cursor, err := db.Collection("products").Find(c.Request.Context(), filter,
			options.Find().SetSort(bson.D{{Key: sortBy, Value: order}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var products []models.Product
		if err := cursor.All(c.Request.Context(), &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode products"})
			return
		}

		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, withPricing(p))
		}
		c.JSON(http.StatusOK, views)
	}
}

// SearchProducts is the keyword lookup used by the storefront suggestion
// box: a plain case-insensitive substring match on name and category.
func SearchProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := strings.TrimSpace(c.Query("q"))
		if keyword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}

		regex := primitive.Regex{Pattern: regexQuoteMeta(keyword), Options: "i"}
		cursor, err := db.Collection("products").Find(c.Request.Context(),
			bson.M{"$or": bson.A{
				bson.M{"name": regex},
				bson.M{"category": regex},
			}},
			options.Find().SetLimit(20))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}

		var products []models.Product
		if err := cursor.All(c.Request.Context(), &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode products"})
			return
		}

		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, withPricing(p))
		}
		c.JSON(http.StatusOK, views)
	}
}

// regexQuoteMeta escapes user input before it lands in a $regex filter.
func regexQuoteMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
