package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"smartkart/models"
)

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id), err == nil && id > 0
}

// getOrCreateWishlist lazily creates the user's wishlist on first access.
func getOrCreateWishlist(db *gorm.DB, userID uint) (models.Wishlist, error) {
	var wishlist models.Wishlist
	err := db.Where("user_id = ?", userID).First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wishlist = models.Wishlist{UserID: userID}
		err = db.Create(&wishlist).Error
	}
	return wishlist, err
}

// GET /wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		wishlist, err := getOrCreateWishlist(db, userID)
		if err != nil {
			internalError(c, err, "failed to fetch wishlist")
			return
		}

		var items []models.WishlistItem
		if err := db.Preload("Product").Preload("Product.Category").
			Where("wishlist_id = ?", wishlist.ID).
			Order("added_at").Find(&items).Error; err != nil {
			internalError(c, err, "failed to fetch wishlist items")
			return
		}
		wishlist.Items = items
		c.JSON(http.StatusOK, wishlist)
	}
}

// POST /wishlist/add/:product_id
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		productID, ok := paramID(c, "product_id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			internalError(c, err, "failed to validate product")
			return
		}

		wishlist, err := getOrCreateWishlist(db, userID)
		if err != nil {
			internalError(c, err, "failed to fetch wishlist")
			return
		}

		var existing models.WishlistItem
		err = db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, product.ID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product already in wishlist"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			internalError(c, err, "failed to check wishlist")
			return
		}

		item := models.WishlistItem{
			WishlistID: wishlist.ID,
			ProductID:  product.ID,
			AddedAt:    time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			internalError(c, err, "failed to add wishlist item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product added to wishlist"})
	}
}

// DELETE /wishlist/remove/:product_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		productID, ok := paramID(c, "product_id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not in wishlist"})
			return
		}

		var wishlist models.Wishlist
		if err := db.Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "wishlist not found"})
			return
		}

		result := db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, productID).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			internalError(c, result.Error, "failed to remove wishlist item")
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product removed from wishlist"})
	}
}

// GET /wishlist/check/:product_id
func IsInWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		productID, ok := paramID(c, "product_id")
		if !ok {
			c.JSON(http.StatusOK, gin.H{"in_wishlist": false})
			return
		}

		var wishlist models.Wishlist
		if err := db.Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"in_wishlist": false})
			return
		}

		var count int64
		if err := db.Model(&models.WishlistItem{}).
			Where("wishlist_id = ? AND product_id = ?", wishlist.ID, productID).
			Count(&count).Error; err != nil {
			internalError(c, err, "failed to check wishlist")
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": count > 0})
	}
}

// DELETE /wishlist/clear
func ClearWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var wishlist models.Wishlist
		if err := db.Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "wishlist not found"})
			return
		}

		if err := db.Where("wishlist_id = ?", wishlist.ID).
			Delete(&models.WishlistItem{}).Error; err != nil {
			internalError(c, err, "failed to clear wishlist")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "wishlist cleared"})
	}
}

func internalError(c *gin.Context, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
