package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/order"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/middleware"
)

// SetupOrderRoutes registers order reads, the live order feed and the
// admin-key-protected status mutations.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orderGroup := r.Group("/api/orders")
	{
		orderGroup.GET("", middleware.ValidateAPIKey, orderControllers.GetAllOrdersHandler(db))
		orderGroup.GET("/:orderId", orderControllers.GetOrderHandler(db))
		orderGroup.GET("/customer/:customerId", orderControllers.GetCustomerOrdersHandler(db))

		// Dashboard websocket feed for freshly paid orders.
		orderGroup.GET("/ws/feed", orderControllers.OrderFeedHandler)

		orderGroup.PUT("/:orderId/status", middleware.ValidateAPIKey, orderControllers.UpdateOrderStatusHandler(db))
		orderGroup.PUT("/:orderId/payment-status", middleware.ValidateAPIKey, orderControllers.UpdatePaymentStatusHandler(db))
		orderGroup.PATCH("/:orderId", middleware.ValidateAPIKey, orderControllers.PatchOrderHandler(db))
	}
}
