package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartkart/config"
	cartControllers "smartkart/controllers/cart"
	orderControllers "smartkart/controllers/order"
	userControllers "smartkart/controllers/user"
	wishlistControllers "smartkart/controllers/wishlist"
	"smartkart/middleware"
)

// SetupUserRoutes registers the JWT-protected shopper endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	user := r.Group("/user")
	user.Use(middleware.UserAuth(cfg.JWTSecret))
	{
		user.GET("", userControllers.GetProfile(db))
		user.PUT("", userControllers.UpdateProfile(db))
	}

	cart := r.Group("/cart")
	cart.Use(middleware.UserAuth(cfg.JWTSecret))
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}

	orders := r.Group("/orders")
	orders.Use(middleware.UserAuth(cfg.JWTSecret))
	{
		orders.POST("/checkout", orderControllers.Checkout(db, cfg.PaymentSecret))
		orders.GET("/my-orders", orderControllers.GetMyOrders(db))
		orders.GET("/:id", orderControllers.GetOrder(db))
	}

	wishlist := r.Group("/wishlist")
	wishlist.Use(middleware.UserAuth(cfg.JWTSecret))
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.POST("/add/:product_id", wishlistControllers.AddToWishlist(db))
		wishlist.DELETE("/remove/:product_id", wishlistControllers.RemoveFromWishlist(db))
		wishlist.GET("/check/:product_id", wishlistControllers.IsInWishlist(db))
		wishlist.DELETE("/clear", wishlistControllers.ClearWishlist(db))
	}
}
