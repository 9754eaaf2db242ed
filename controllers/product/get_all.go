package productController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"smartkart/models"
)

// GET /products?category=&brand=&min_price=&max_price=&search=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")

		if category := c.Query("category"); category != "" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.name = ?", category)
		}
		if brand := c.Query("brand"); brand != "" {
			query = query.Where("brand = ?", brand)
		}
		if minPrice := c.Query("min_price"); minPrice != "" {
			mp, err := decimal.NewFromString(minPrice)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPrice := c.Query("max_price"); maxPrice != "" {
			mp, err := decimal.NewFromString(maxPrice)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}
		if search := c.Query("search"); search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ? OR LOWER(brand) LIKE ?",
				pattern, pattern, pattern,
			)
		}

		var products []models.Product
		if err := query.Order("products.created_at DESC").Find(&products).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch products")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
