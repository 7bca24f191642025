package addressControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddressInput struct {
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
	IsDefault  bool   `json:"isDefault"`
}

func contextUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return primitive.NilObjectID, false
	}
	userID, ok := models.ParseID(userIDVal.(string))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier"})
		return primitive.NilObjectID, false
	}
	return userID, true
}

// clearDefault unsets the default flag on all of a user's addresses before
// a new default is written.
func clearDefault(c *gin.Context, db *mongo.Database, userID primitive.ObjectID) error {
	_, err := db.Collection("addresses").UpdateMany(c.Request.Context(),
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"isDefault": false}},
	)
	return err
}

// GET /user/addresses
func GetAddresses(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		cursor, err := db.Collection("addresses").Find(c.Request.Context(), bson.M{"userId": userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}

		addresses := []models.Address{}
		if err := cursor.All(c.Request.Context(), &addresses); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /user/addresses
func CreateAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.IsDefault {
			if err := clearDefault(c, db, userID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update default address"})
				return
			}
		}

		address := models.Address{
			UserID:     userID,
			FullName:   input.FullName,
			Phone:      input.Phone,
			Street:     input.Street,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
			Country:    input.Country,
			IsDefault:  input.IsDefault,
		}

		res, err := db.Collection("addresses").InsertOne(c.Request.Context(), address)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}
		address.ID = res.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, address)
	}
}

// PUT /user/addresses/:id
func UpdateAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.IsDefault {
			if err := clearDefault(c, db, userID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update default address"})
				return
			}
		}

		res, err := db.Collection("addresses").UpdateOne(c.Request.Context(),
			bson.M{"_id": id, "userId": userID},
			bson.M{"$set": bson.M{
				"fullName":   input.FullName,
				"phone":      input.Phone,
				"street":     input.Street,
				"city":       input.City,
				"state":      input.State,
				"postalCode": input.PostalCode,
				"country":    input.Country,
				"isDefault":  input.IsDefault,
			}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address updated"})
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		res, err := db.Collection("addresses").DeleteOne(c.Request.Context(),
			bson.M{"_id": id, "userId": userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
