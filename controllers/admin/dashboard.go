package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"smartkart/models"
)

type DashboardResponse struct {
	TotalUsers         int64           `json:"total_users"`
	TotalProducts      int64           `json:"total_products"`
	TotalOrders        int64           `json:"total_orders"`
	PendingOrders      int64           `json:"pending_orders"`
	OutOfStockProducts int64           `json:"out_of_stock_products"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
}

// GET /admin/dashboard
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var response DashboardResponse

		counts := []struct {
			dest  *int64
			query *gorm.DB
		}{
			{&response.TotalUsers, db.Model(&models.User{})},
			{&response.TotalProducts, db.Model(&models.Product{})},
			{&response.TotalOrders, db.Model(&models.Order{})},
			{&response.PendingOrders, db.Model(&models.Order{}).
				Where("status IN ?", []models.OrderStatus{models.OrderStatusPending, models.OrderStatusProcessing})},
			{&response.OutOfStockProducts, db.Model(&models.Product{}).Where("stock = 0")},
		}
		for _, count := range counts {
			if err := count.query.Count(count.dest).Error; err != nil {
				log.Error().Err(err).Msg("dashboard count failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
		}

		var amounts []decimal.Decimal
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Pluck("total_amount", &amounts).Error; err != nil {
			log.Error().Err(err).Msg("dashboard revenue query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		response.TotalRevenue = decimal.Zero
		for _, amount := range amounts {
			response.TotalRevenue = response.TotalRevenue.Add(amount)
		}

		c.JSON(http.StatusOK, response)
	}
}
