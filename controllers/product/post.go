package productController

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"smartkart/models"
)

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  uint            `json:"category_id" binding:"required"`
	Brand       string          `json:"brand"`
	Stock       int             `json:"stock" binding:"min=0"`
	Images      []string        `json:"images"`
}

// normalizeImages cleans the incoming image list once, at write time, so
// every stored row holds a uniform JSON array.
func normalizeImages(raw []string) models.ImageList {
	images := models.ImageList{}
	for _, url := range raw {
		url = strings.TrimSpace(url)
		if url != "" {
			images = append(images, url)
		}
	}
	return images
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
				return
			}
			log.Error().Err(err).Msg("failed to validate category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		product := models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			CategoryID:  req.CategoryID,
			Brand:       req.Brand,
			Stock:       req.Stock,
			Images:      normalizeImages(req.Images),
		}
		if err := db.Create(&product).Error; err != nil {
			log.Error().Err(err).Msg("failed to create product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		product.Category = category
		c.JSON(http.StatusCreated, product)
	}
}
