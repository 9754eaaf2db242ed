package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"smartkart/models"
)

type CategoryResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	ProductCount int64  `json:"product_count"`
}

// GET /categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch categories")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		response := make([]CategoryResponse, 0, len(categories))
		for _, category := range categories {
			var count int64
			if err := db.Model(&models.Product{}).
				Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
				log.Error().Err(err).Msg("failed to count products")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			response = append(response, CategoryResponse{
				ID:           category.ID,
				Name:         category.Name,
				Description:  category.Description,
				ImageURL:     category.ImageURL,
				ProductCount: count,
			})
		}
		c.JSON(http.StatusOK, response)
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}

		var existing models.Category
		if err := db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category already exists"})
			return
		}

		category := models.Category{
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		}
		if err := db.Create(&category).Error; err != nil {
			log.Error().Err(err).Msg("failed to create category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// GET /brands
func GetBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []string
		if err := db.Model(&models.Product{}).
			Where("brand <> ''").
			Distinct("brand").
			Order("brand").
			Pluck("brand", &brands).Error; err != nil {
			log.Error().Err(err).Msg("failed to fetch brands")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}
