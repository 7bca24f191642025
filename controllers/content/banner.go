package contentControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BannerInput struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl" binding:"required"`
	LinkURL  string `json:"linkUrl"`
	Active   *bool  `json:"active"`
}

// GET /content/banner
// The featured banner is a singleton document.
func GetFeaturedBanner(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.FeaturedBanner
		err := db.Collection("banners").FindOne(c.Request.Context(), bson.M{}).Decode(&banner)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "No banner configured"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banner"})
			return
		}
		c.JSON(http.StatusOK, banner)
	}
}

// PUT /admin/banner — upsert the singleton
func UpsertFeaturedBanner(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}

		var banner models.FeaturedBanner
		err := db.Collection("banners").FindOneAndUpdate(c.Request.Context(),
			bson.M{},
			bson.M{"$set": bson.M{
				"title":     input.Title,
				"subtitle":  input.Subtitle,
				"imageUrl":  input.ImageURL,
				"linkUrl":   input.LinkURL,
				"active":    active,
				"updatedAt": time.Now(),
			}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&banner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save banner"})
			return
		}

		c.JSON(http.StatusOK, banner)
	}
}
