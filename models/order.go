package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusDelayed    OrderStatus = "Delayed"

	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusSuccess PaymentStatus = "Success"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// ParseOrderStatus maps a status string (case-insensitive) to the enumeration.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusDelayed,
	} {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", errors.New("invalid order status")
}

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	Status      OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`

	TrackingNumber       string     `json:"tracking_number,omitempty"`
	ShippedDate          *time.Time `json:"shipped_date,omitempty"`
	DeliveredDate        *time.Time `json:"delivered_date,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`

	// Shipping address snapshot, copied at checkout so later profile edits
	// never rewrite past orders.
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingState   string `json:"shipping_state"`
	ShippingZipCode string `json:"shipping_zip_code"`
	ShippingPhone   string `json:"shipping_phone"`

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payment   *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Number is the customer-facing order reference.
func (o Order) Number() string {
	return fmt.Sprintf("ORD%06d", o.ID)
}

type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index" json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderID       uint            `gorm:"uniqueIndex" json:"order_id"` // exactly one payment per order
	TransactionID string          `gorm:"not null" json:"transaction_id"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Status        PaymentStatus   `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	PaymentDate   time.Time       `json:"payment_date"`
}
