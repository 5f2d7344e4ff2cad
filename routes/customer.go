package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	customerControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/customer"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/middleware"
)

// SetupCustomerRoutes registers account registration, login and profile
// endpoints. Profile updates require a valid customer token.
func SetupCustomerRoutes(r *gin.Engine, db *gorm.DB) {
	customerGroup := r.Group("/api/customer")
	{
		customerGroup.POST("/register", customerControllers.RegisterHandler(db))
		customerGroup.POST("/login", customerControllers.LoginHandler(db))
		customerGroup.GET("/:id", customerControllers.GetCustomerHandler(db))
		customerGroup.PUT("", middleware.ValidateToken, customerControllers.UpdateCustomerHandler(db))
	}
}
