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

type SettingsInput struct {
	StoreName    string              `json:"storeName" binding:"required"`
	LogoURL      string              `json:"logoUrl"`
	SupportEmail string              `json:"supportEmail" binding:"omitempty,email"`
	SocialLinks  []models.SocialLink `json:"socialLinks"`
}

// GET /content/settings
func GetSiteSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.SiteSettings
		err := db.Collection("settings").FindOne(c.Request.Context(), bson.M{}).Decode(&settings)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				// an unconfigured store still renders
				c.JSON(http.StatusOK, models.SiteSettings{SocialLinks: []models.SocialLink{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /admin/settings — upsert the singleton
func UpsertSiteSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.SocialLinks == nil {
			input.SocialLinks = []models.SocialLink{}
		}

		var settings models.SiteSettings
		err := db.Collection("settings").FindOneAndUpdate(c.Request.Context(),
			bson.M{},
			bson.M{"$set": bson.M{
				"storeName":    input.StoreName,
				"logoUrl":      input.LogoURL,
				"supportEmail": input.SupportEmail,
				"socialLinks":  input.SocialLinks,
				"updatedAt":    time.Now(),
			}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&settings)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}
