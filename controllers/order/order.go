package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"smartkart/models"
)

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	ShippingCity    string `json:"shipping_city"`
	ShippingState   string `json:"shipping_state"`
	ShippingZipCode string `json:"shipping_zip_code"`
	ShippingPhone   string `json:"shipping_phone"`

	PaymentMethod string `json:"payment_method" binding:"required"`

	// Gateway payments
	ProviderOrderID   string `json:"provider_order_id"`
	ProviderPaymentID string `json:"provider_payment_id"`
	ProviderSignature string `json:"provider_signature"`

	// Simulated card payments
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
}

type CheckoutResponse struct {
	OrderID              uint                 `json:"order_id"`
	OrderNumber          string               `json:"order_number"`
	TotalAmount          decimal.Decimal      `json:"total_amount"`
	Status               models.OrderStatus   `json:"status"`
	PaymentStatus        models.PaymentStatus `json:"payment_status"`
	TransactionID        string               `json:"transaction_id"`
	ExpectedDeliveryDate *time.Time           `json:"expected_delivery_date,omitempty"`
	Message              string               `json:"message"`
}

type stockError struct{ name string }

func (e stockError) Error() string {
	return "insufficient stock for " + e.name
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// POST /orders/checkout
//
// The whole success path runs inside one transaction. Stock is decremented
// with a conditional UPDATE (stock >= quantity), so two concurrent checkouts
// of the same product cannot both pass the earlier read-time check and
// overdraw stock.
func Checkout(db *gorm.DB, paymentSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			internalError(c, err, "checkout user lookup failed")
			return
		}

		var cart models.Cart
		err := db.Preload("Items").Preload("Items.Product").
			Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		if err != nil {
			internalError(c, err, "checkout cart lookup failed")
			return
		}

		// Validate every line before touching anything.
		for _, item := range cart.Items {
			if item.Product.ID == 0 {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("cart contains invalid product (id %d)", item.ProductID),
				})
				return
			}
			if item.Product.Stock < item.Quantity {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "insufficient stock for " + item.Product.Name,
				})
				return
			}
		}

		// Total uses the current product price, deliberately, not a price
		// cached when the item entered the cart.
		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				UnitPrice:   item.Product.Price,
				Quantity:    item.Quantity,
			})
		}

		outcome := processPayment(PaymentDetails{
			Method:            req.PaymentMethod,
			ProviderOrderID:   req.ProviderOrderID,
			ProviderPaymentID: req.ProviderPaymentID,
			ProviderSignature: req.ProviderSignature,
			CardNumber:        req.CardNumber,
			CardCVV:           req.CardCVV,
		}, paymentSecret)

		expectedDelivery := time.Now().Add(7 * 24 * time.Hour)
		order := models.Order{
			UserID:               userID,
			TotalAmount:          total,
			Status:               models.OrderStatusProcessing,
			ExpectedDeliveryDate: &expectedDelivery,
			ShippingAddress:      req.ShippingAddress,
			ShippingCity:         req.ShippingCity,
			ShippingState:        req.ShippingState,
			ShippingZipCode:      req.ShippingZipCode,
			ShippingPhone:        req.ShippingPhone,
			Items:                orderItems,
			CreatedAt:            time.Now(),
		}
		if !outcome.Approved {
			order.Status = models.OrderStatusCancelled
			order.ExpectedDeliveryDate = nil
		}

		var payment models.Payment
		err = db.Transaction(func(tx *gorm.DB) error {
			if outcome.Approved {
				if err := decrementStock(tx, cart.Items); err != nil {
					return err
				}
			}

			// Order first so the payment row can reference its id.
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			payment = models.Payment{
				OrderID:       order.ID,
				TransactionID: generateTransactionID(),
				Method:        req.PaymentMethod,
				Amount:        total,
				Status:        outcome.Status,
				PaymentDate:   time.Now(),
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}

			if outcome.Approved {
				if err := tx.Where("cart_id = ?", cart.CartID).
					Delete(&models.CartItem{}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			var stockErr stockError
			if errors.As(err, &stockErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
				return
			}
			internalError(c, err, "checkout transaction failed")
			return
		}

		if outcome.Approved {
			order.Payment = &payment
			broadcastNewOrder(order)
		}

		message := "Order placed successfully!"
		if !outcome.Approved {
			message = "Payment failed. Please try again."
		}
		c.JSON(http.StatusOK, CheckoutResponse{
			OrderID:              order.ID,
			OrderNumber:          order.Number(),
			TotalAmount:          total,
			Status:               order.Status,
			PaymentStatus:        payment.Status,
			TransactionID:        payment.TransactionID,
			ExpectedDeliveryDate: order.ExpectedDeliveryDate,
			Message:              message,
		})
	}
}

// decrementStock takes stock for every cart line with a conditional UPDATE.
// The `stock >= quantity` guard re-checks availability at write time, so a
// concurrent checkout that drained the product between the cart read and this
// point hits RowsAffected == 0 and aborts the transaction instead of driving
// stock negative.
func decrementStock(tx *gorm.DB, items []models.CartItem) error {
	for _, item := range items {
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return stockError{name: item.Product.Name}
		}
	}
	return nil
}

func internalError(c *gin.Context, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
