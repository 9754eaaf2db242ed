package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartkart/config"
	adminControllers "smartkart/controllers/admin"
	orderControllers "smartkart/controllers/order"
	productController "smartkart/controllers/product"
	stockNotificationControllers "smartkart/controllers/stocknotification"
	userControllers "smartkart/controllers/user"
	"smartkart/middleware"
)

// SetupAdminRoutes registers the endpoints that require the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/dashboard", adminControllers.GetDashboard(db))
		admin.GET("/users", userControllers.GetAllUsers(db))

		products := admin.Group("/products")
		{
			products.POST("", productController.CreateProduct(db))
			products.PUT("/:id", productController.UpdateProduct(db))
			products.PUT("/:id/stock", productController.UpdateStock(db))
			products.DELETE("/:id", productController.DeleteProduct(db))
		}

		admin.POST("/categories", productController.CreateCategory(db))

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrders(db))
			orders.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
			orders.GET("/export", orderControllers.ExportOrders(db))
			orders.GET("/ws", orderControllers.OrderFeed)
		}

		admin.GET("/stocknotifications/:product_id", stockNotificationControllers.GetProductNotifications(db))
	}
}
