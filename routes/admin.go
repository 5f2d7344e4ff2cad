package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/order"
	otpControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/otp"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
		}

		otpAdmin := adminGroup.Group("/otp")
		{
			otpAdmin.POST("/cleanup", otpControllers.CleanupOTPs(db))
		}
	}
}
