package adminController

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /admin/dashboard
// Headline counts plus a fixed 12-month sales window grouped by month.
func GetDashboardStats(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		orderCount, err := db.Collection("orders").CountDocuments(ctx, bson.M{})
		if err != nil {
			log.Println("❌ Failed to count orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		productCount, err := db.Collection("products").CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		userCount, err := db.Collection("users").CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		windowStart := time.Now().AddDate(-1, 0, 0)
		pipeline := mongo.Pipeline{
			{{Key: "$match", Value: bson.M{
				"createdAt":   bson.M{"$gte": windowStart},
				"orderStatus": bson.M{"$ne": models.OrderStatusCancelled},
			}}},
			{{Key: "$group", Value: bson.M{
				"_id": bson.M{"$dateToString": bson.M{
					"format": "%Y-%m",
					"date":   "$createdAt",
				}},
				"totalSales": bson.M{"$sum": "$totalAmount"},
				"orderCount": bson.M{"$sum": 1},
			}}},
			{{Key: "$sort", Value: bson.M{"_id": 1}}},
		}

		cursor, err := db.Collection("orders").Aggregate(ctx, pipeline)
		if err != nil {
			log.Println("❌ Monthly sales aggregation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		type monthlySales struct {
			Month      string  `bson:"_id" json:"month"`
			TotalSales float64 `bson:"totalSales" json:"totalSales"`
			OrderCount int     `bson:"orderCount" json:"orderCount"`
		}
		sales := []monthlySales{}
		if err := cursor.All(ctx, &sales); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders":       orderCount,
			"products":     productCount,
			"users":        userCount,
			"monthlySales": sales,
		})
	}
}
