package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/payment"
)

// SetupPaymentRoutes registers the Razorpay checkout endpoints.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	paymentGroup := r.Group("/api/payments")
	{
		paymentGroup.POST("/create-order", paymentControllers.CreateGatewayOrderHandler())
		paymentGroup.POST("/verify-payment", paymentControllers.VerifyPaymentHandler(db))
	}
}
