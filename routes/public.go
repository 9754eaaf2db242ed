package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartkart/config"
	authControllers "smartkart/controllers/auth"
	chatControllers "smartkart/controllers/chat"
	productController "smartkart/controllers/product"
	stockNotificationControllers "smartkart/controllers/stocknotification"
)

// SetupPublicRoutes registers the endpoints that need no token.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authControllers.Register(db, cfg.JWTSecret, cfg.TokenTTL))
		auth.POST("/login", authControllers.Login(db, cfg.JWTSecret, cfg.TokenTTL))
	}

	r.GET("/products", productController.GetProducts(db))
	r.GET("/products/:id", productController.GetProductByID(db))
	r.GET("/categories", productController.GetCategories(db))
	r.GET("/brands", productController.GetBrands(db))

	r.POST("/stocknotification/request", stockNotificationControllers.RequestNotification(db))

	r.POST("/chat/ask", chatControllers.Ask())
}
