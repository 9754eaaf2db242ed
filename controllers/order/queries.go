package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartkart/models"
)

// paramID parses a numeric path parameter. Non-numeric input reports false so
// handlers answer not-found instead of sending garbage into the query.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err == nil && id > 0
}

// GET /orders/my-orders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Payment").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			internalError(c, err, "failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
//
// Scoped to the caller: another user's order id answers 404, never 403, so
// order ids cannot be probed for existence.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		orderID, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		var order models.Order
		err := db.
			Preload("Items").
			Preload("Payment").
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			internalError(c, err, "failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Payment").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			internalError(c, err, "failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
