package routes

import (
	"github.com/gin-gonic/gin"
	addressControllers "github.com/noOne-33/stylora-api/controllers/address"
	cartControllers "github.com/noOne-33/stylora-api/controllers/cart"
	couponControllers "github.com/noOne-33/stylora-api/controllers/coupon"
	orderControllers "github.com/noOne-33/stylora-api/controllers/order"
	userControllers "github.com/noOne-33/stylora-api/controllers/user"
	wishlistControllers "github.com/noOne-33/stylora-api/controllers/wishlist"
	"github.com/noOne-33/stylora-api/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *mongo.Database) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))
		userGroup.DELETE("/", userControllers.DeleteSelf(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/", cartControllers.SetCartItemQuantity(db))
			cartGroup.DELETE("/:cartKey", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.CheckoutHandler(db))
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(db))
			orderGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderGroup.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
		}

		// ──────────────── Coupons ────────────────
		userGroup.POST("/coupons/validate", couponControllers.ValidateCouponHandler(db))

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("/", wishlistControllers.AddWishlistItem(db))
			wishlistGroup.DELETE("/:productId", wishlistControllers.RemoveWishlistItem(db))
		}

		// ──────────────── Address Book ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("/", addressControllers.GetAddresses(db))
			addressGroup.POST("/", addressControllers.CreateAddress(db))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(db))
		}
	}
}
