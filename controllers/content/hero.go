package contentControllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HeroSlideInput accepts displayOrder as JSON number or string; admin UIs
// are sloppy about this, so it is coerced here.
type HeroSlideInput struct {
	Title        string      `json:"title" binding:"required"`
	Subtitle     string      `json:"subtitle"`
	ImageURL     string      `json:"imageUrl" binding:"required"`
	LinkURL      string      `json:"linkUrl"`
	DisplayOrder json.Number `json:"displayOrder"`
	Active       *bool       `json:"active"`
}

func (in HeroSlideInput) displayOrder() int {
	n, err := in.DisplayOrder.Int64()
	if err != nil {
		if f, ferr := in.DisplayOrder.Float64(); ferr == nil {
			return int(f)
		}
		return 0
	}
	return int(n)
}

func (in HeroSlideInput) active() bool {
	if in.Active == nil {
		return true
	}
	return *in.Active
}

// GET /content/hero-slides — active slides in display order
func GetHeroSlides(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := db.Collection("hero_slides").Find(c.Request.Context(),
			bson.M{"active": true},
			options.Find().SetSort(bson.M{"displayOrder": 1}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero slides"})
			return
		}

		slides := []models.HeroSlide{}
		if err := cursor.All(c.Request.Context(), &slides); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode hero slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

// GET /admin/hero-slides — everything, including inactive
func GetAllHeroSlides(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := db.Collection("hero_slides").Find(c.Request.Context(), bson.M{},
			options.Find().SetSort(bson.M{"displayOrder": 1}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero slides"})
			return
		}

		slides := []models.HeroSlide{}
		if err := cursor.All(c.Request.Context(), &slides); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode hero slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

// POST /admin/hero-slides
func CreateHeroSlide(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input HeroSlideInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		slide := models.HeroSlide{
			Title:        input.Title,
			Subtitle:     input.Subtitle,
			ImageURL:     input.ImageURL,
			LinkURL:      input.LinkURL,
			DisplayOrder: input.displayOrder(),
			Active:       input.active(),
			UpdatedAt:    time.Now(),
		}

		res, err := db.Collection("hero_slides").InsertOne(c.Request.Context(), slide)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hero slide"})
			return
		}
		slide.ID = res.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, slide)
	}
}

// PUT /admin/hero-slides/:id
func UpdateHeroSlide(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide ID"})
			return
		}

		var input HeroSlideInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		res, err := db.Collection("hero_slides").UpdateOne(c.Request.Context(),
			bson.M{"_id": id},
			bson.M{"$set": bson.M{
				"title":        input.Title,
				"subtitle":     input.Subtitle,
				"imageUrl":     input.ImageURL,
				"linkUrl":      input.LinkURL,
				"displayOrder": input.displayOrder(),
				"active":       input.active(),
				"updatedAt":    time.Now(),
			}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hero slide"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Hero slide updated"})
	}
}

// DELETE /admin/hero-slides/:id
func DeleteHeroSlide(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide ID"})
			return
		}

		res, err := db.Collection("hero_slides").DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hero slide"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hero slide not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Hero slide deleted"})
	}
}
