package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/noOne-33/stylora-api/controllers/admin"
	cartControllers "github.com/noOne-33/stylora-api/controllers/cart"
	contentControllers "github.com/noOne-33/stylora-api/controllers/content"
	couponControllers "github.com/noOne-33/stylora-api/controllers/coupon"
	orderControllers "github.com/noOne-33/stylora-api/controllers/order"
	productcontroller "github.com/noOne-33/stylora-api/controllers/product"
	uploadControllers "github.com/noOne-33/stylora-api/controllers/upload"
	userControllers "github.com/noOne-33/stylora-api/controllers/user"
	"github.com/noOne-33/stylora-api/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT with
// the admin role.
func SetupAdminRoutes(r *gin.Engine, db *mongo.Database) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboardStats(db))

		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.PUT("/users/:id/role", userControllers.UpdateUserRole(db))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUserByID(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Coupon Management ───────────
		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.POST("", couponControllers.CreateCoupon(db))
			couponAdmin.GET("", couponControllers.GetCoupons(db))
			couponAdmin.PUT("/:id", couponControllers.UpdateCoupon(db))
			couponAdmin.DELETE("/:id", couponControllers.DeleteCoupon(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		}

		// websocket endpoint for real-time order updates
		adminGroup.GET("/orders-feed", orderControllers.OrderWebSocketHandler)

		// ─────────── Content Management ───────────
		heroAdmin := adminGroup.Group("/hero-slides")
		{
			heroAdmin.GET("", contentControllers.GetAllHeroSlides(db))
			heroAdmin.POST("", contentControllers.CreateHeroSlide(db))
			heroAdmin.PUT("/:id", contentControllers.UpdateHeroSlide(db))
			heroAdmin.DELETE("/:id", contentControllers.DeleteHeroSlide(db))
		}
		adminGroup.PUT("/banner", contentControllers.UpsertFeaturedBanner(db))
		adminGroup.PUT("/settings", contentControllers.UpsertSiteSettings(db))

		postAdmin := adminGroup.Group("/posts")
		{
			postAdmin.POST("", contentControllers.CreatePost(db))
			postAdmin.PUT("/:id", contentControllers.UpdatePost(db))
			postAdmin.DELETE("/:id", contentControllers.DeletePost(db))
		}

		// ─────────── File Uploads ───────────
		adminGroup.POST("/uploads", uploadControllers.UploadFile(db))
		adminGroup.DELETE("/uploads/:filename", uploadControllers.DeleteFile(db))

		// ─────────── User Carts ───────────
		adminGroup.GET("/user-cart/:id", cartControllers.GetAdminUserCart(db))
	}
}
