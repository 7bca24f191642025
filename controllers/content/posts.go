package contentControllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostInput struct {
	Title      string `json:"title" binding:"required"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published"`
}

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := slugCleanup.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// GET /content/posts — published posts, newest first
func GetPublishedPosts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := db.Collection("posts").Find(c.Request.Context(),
			bson.M{"published": true},
			options.Find().SetSort(bson.M{"createdAt": -1}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
			return
		}

		posts := []models.Post{}
		if err := cursor.All(c.Request.Context(), &posts); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// GET /content/posts/:slug
func GetPostBySlug(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.Post
		err := db.Collection("posts").FindOne(c.Request.Context(),
			bson.M{"slug": c.Param("slug"), "published": true}).Decode(&post)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// POST /admin/posts
func CreatePost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		post := models.Post{
			Title:      input.Title,
			Slug:       slugify(input.Title),
			Body:       input.Body,
			CoverImage: input.CoverImage,
			Published:  input.Published,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		res, err := db.Collection("posts").InsertOne(c.Request.Context(), post)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A post with this title already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
			return
		}
		post.ID = res.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, post)
	}
}

// PUT /admin/posts/:id
func UpdatePost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
			return
		}

		var input PostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		res, err := db.Collection("posts").UpdateOne(c.Request.Context(),
			bson.M{"_id": id},
			bson.M{"$set": bson.M{
				"title":      input.Title,
				"slug":       slugify(input.Title),
				"body":       input.Body,
				"coverImage": input.CoverImage,
				"published":  input.Published,
				"updatedAt":  time.Now(),
			}},
		)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A post with this title already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Post updated"})
	}
}

// DELETE /admin/posts/:id
func DeletePost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := models.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
			return
		}

		res, err := db.Collection("posts").DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
	}
}
