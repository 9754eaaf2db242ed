package models

import "time"

// StockNotification records a restock-alert subscription for a product that
// was out of stock when the shopper asked.
type StockNotification struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Email      string     `gorm:"not null;uniqueIndex:idx_email_product" json:"email"`
	ProductID  uint       `gorm:"index;uniqueIndex:idx_email_product" json:"product_id"`
	Product    Product    `gorm:"foreignKey:ProductID" json:"-"`
	IsNotified bool       `gorm:"default:false" json:"is_notified"`
	CreatedAt  time.Time  `json:"created_at"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
}
