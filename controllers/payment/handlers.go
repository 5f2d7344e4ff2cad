package paymentControllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/order"
	"gorm.io/gorm"
)

type CreateGatewayOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string     `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string     `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string     `json:"razorpay_signature" binding:"required"`
	OrderData         OrderDraft `json:"orderData" binding:"required"`
}

// POST /api/payments/create-order
func CreateGatewayOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGatewayOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		if req.Currency == "" {
			req.Currency = "INR"
		}

		order, err := CreateGatewayOrder(req.Amount, req.Currency, req.Receipt)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /api/payments/verify-payment
func VerifyPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("RAZORPAY_KEY_SECRET")
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment gateway not configured"})
			return
		}

		var req VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment verification data"})
			return
		}

		order, created, err := VerifyPaymentAndCreateOrder(db, secret, VerifyPaymentInput{
			GatewayOrderRef:   req.RazorpayOrderID,
			GatewayPaymentRef: req.RazorpayPaymentID,
			Signature:         req.RazorpaySignature,
			Draft:             req.OrderData,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidSignature) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid payment signature"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify payment"})
			return
		}

		if created {
			orderControllers.BroadcastNewOrder(*order)
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"order_id": order.OrderRef,
			"message":  "Payment verified and order created successfully",
		})
	}
}
