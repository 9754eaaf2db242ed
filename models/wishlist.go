package models

import "time"

type Wishlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex" json:"user_id"` // one wishlist per user
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
}

type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WishlistID uint      `gorm:"index;uniqueIndex:idx_wishlist_product" json:"wishlist_id"`
	ProductID  uint      `gorm:"uniqueIndex:idx_wishlist_product" json:"product_id"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"product"`
	AddedAt    time.Time `json:"added_at"`
}
