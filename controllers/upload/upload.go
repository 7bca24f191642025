package uploadControllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

func bucket(db *mongo.Database) (*gridfs.Bucket, error) {
	return gridfs.NewBucket(db)
}

// POST /admin/uploads
// Accepts multipart form data and streams the bytes into GridFS under a
// generated filename. The returned URL is what product/content documents
// reference.
func UploadFile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, fileHeader, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		defer file.Close()

		b, err := bucket(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open storage bucket"})
			return
		}

		// random filename, original extension kept for content sniffing
		filename := uuid.NewString() + filepath.Ext(fileHeader.Filename)

		uploadStream, err := b.OpenUploadStream(filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open upload stream"})
			return
		}

		if _, err := io.Copy(uploadStream, file); err != nil {
			uploadStream.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
			return
		}
		if err := uploadStream.Close(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize upload"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"filename": filename,
			"url":      fmt.Sprintf("/files/%s", filename),
		})
	}
}

// GET /files/:filename
func DownloadFile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := bucket(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open storage bucket"})
			return
		}

		filename := c.Param("filename")
		stream, err := b.OpenDownloadStreamByName(filename)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		defer stream.Close()

		c.DataFromReader(http.StatusOK, stream.GetFile().Length,
			"application/octet-stream", stream, nil)
	}
}

// DELETE /admin/uploads/:filename
func DeleteFile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := bucket(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open storage bucket"})
			return
		}

		filename := c.Param("filename")

		// GridFS deletes by file ID, so resolve the name first
		var file struct {
			ID interface{} `bson:"_id"`
		}
		err = db.Collection("fs.files").FindOne(c.Request.Context(),
			bson.M{"filename": filename}).Decode(&file)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up file"})
			return
		}

		if err := b.Delete(file.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
	}
}
