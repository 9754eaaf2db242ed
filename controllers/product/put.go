package productController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"smartkart/models"
)

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Error().Err(err).Msg("failed to fetch product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		if req.CategoryID != product.CategoryID {
			var category models.Category
			if err := db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
				return
			}
		}

		product.Name = req.Name
		product.Description = req.Description
		product.Price = req.Price
		product.CategoryID = req.CategoryID
		product.Brand = req.Brand
		product.Stock = req.Stock
		product.Images = normalizeImages(req.Images)

		if err := db.Save(&product).Error; err != nil {
			log.Error().Err(err).Msg("failed to update product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

type UpdateStockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}

// PUT /admin/products/:id/stock
func UpdateStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		var req UpdateStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}

		result := db.Model(&models.Product{}).Where("id = ?", id).
			Update("stock", req.Stock)
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("failed to update stock")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "stock updated"})
	}
}
