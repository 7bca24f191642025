package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/noOne-33/stylora-api/db"
	"github.com/noOne-33/stylora-api/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	database, err := db.Connect(context.Background(), mongoURI(), databaseName())
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	if err := db.EnsureIndexes(context.Background(), database); err != nil {
		log.Fatalf("❌ Failed to create indexes: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Allow large file uploads (64 MB)
	r.MaxMultipartMemory = 64 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, database)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

func databaseName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "stylora"
}
