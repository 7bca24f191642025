package routes

import (
	"github.com/gin-gonic/gin"
	contentControllers "github.com/noOne-33/stylora-api/controllers/content"
	productControllers "github.com/noOne-33/stylora-api/controllers/product"
	uploadControllers "github.com/noOne-33/stylora-api/controllers/upload"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, db *mongo.Database) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/search", productControllers.SearchProducts(db))
	r.GET("/categories", productControllers.GetAllCategories(db))

	// ──────────────── Content ────────────────
	content := r.Group("/content")
	{
		content.GET("/hero-slides", contentControllers.GetHeroSlides(db))
		content.GET("/banner", contentControllers.GetFeaturedBanner(db))
		content.GET("/settings", contentControllers.GetSiteSettings(db))
		content.GET("/posts", contentControllers.GetPublishedPosts(db))
		content.GET("/posts/:slug", contentControllers.GetPostBySlug(db))
	}

	// ──────────────── Stored files ────────────────
	r.GET("/files/:filename", uploadControllers.DownloadFile(db))
}
