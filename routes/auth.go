package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/noOne-33/stylora-api/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *mongo.Database) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
	}
}
