package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	DiscountType  string   `json:"discountType" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue float64  `json:"discountValue" binding:"min=0"`
	Category      string   `json:"category" binding:"required"`
	Images        []string `json:"images"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Stock         int      `json:"stock" binding:"min=0"`
}

// CreateProduct creates a new product. Image URLs come from the upload
// endpoint; this handler only stores references.
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			DiscountType:  input.DiscountType,
			DiscountValue: input.DiscountValue,
			Category:      input.Category,
			Images:        input.Images,
			Colors:        input.Colors,
			Sizes:         input.Sizes,
			Stock:         input.Stock,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		res, err := db.Collection("products").InsertOne(c.Request.Context(), product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		product.ID = res.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, product)
	}
}
