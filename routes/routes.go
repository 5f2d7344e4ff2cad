package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth (guest sessions, admin dashboard login, OTP)
	SetupAuthRoutes(r, db)

	// Customer accounts
	SetupCustomerRoutes(r, db)

	// Carts (customer + guest) and wishlist
	SetupCartRoutes(r, db)

	// Category taxonomy
	SetupCategoryRoutes(r, db)

	// Orders and the payment gateway
	SetupOrderRoutes(r, db)
	SetupPaymentRoutes(r, db)

	// Admin-key-protected operations
	SetupAdminRoutes(r, db)
}
