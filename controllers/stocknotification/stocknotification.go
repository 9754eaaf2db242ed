package stockNotificationControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"smartkart/models"
)

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err == nil && id > 0
}

type NotificationRequest struct {
	Email     string `json:"email" binding:"required,email"`
	ProductID uint   `json:"product_id" binding:"required"`
}

// POST /stocknotification/request
//
// Only out-of-stock products accept subscriptions, and an email that is
// already waiting on the same product is not subscribed twice.
func RequestNotification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			internalError(c, err, "failed to validate product")
			return
		}

		if product.Stock > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product is currently in stock"})
			return
		}

		// One row per (email, product), backed by a unique index. A row that
		// was already notified is reset to pending rather than duplicated.
		var existing models.StockNotification
		err := db.Where("email = ? AND product_id = ?", req.Email, req.ProductID).
			First(&existing).Error
		if err == nil {
			if !existing.IsNotified {
				c.JSON(http.StatusOK, gin.H{"message": "you are already subscribed for notifications on this product"})
				return
			}
			if err := db.Model(&existing).
				Updates(map[string]interface{}{"is_notified": false, "notified_at": nil}).Error; err != nil {
				internalError(c, err, "failed to renew subscription")
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "we will notify you when this product is back in stock"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			internalError(c, err, "failed to check subscriptions")
			return
		}

		notification := models.StockNotification{
			Email:     req.Email,
			ProductID: req.ProductID,
		}
		if err := db.Create(&notification).Error; err != nil {
			internalError(c, err, "failed to create subscription")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "we will notify you when this product is back in stock"})
	}
}

// GET /admin/stocknotifications/:product_id
func GetProductNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := paramID(c, "product_id")
		if !ok {
			// same answer as a product with no subscribers
			c.JSON(http.StatusOK, []models.StockNotification{})
			return
		}

		var notifications []models.StockNotification
		if err := db.Where("product_id = ? AND is_notified = ?", productID, false).
			Find(&notifications).Error; err != nil {
			internalError(c, err, "failed to fetch subscriptions")
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

func internalError(c *gin.Context, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
