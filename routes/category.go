package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/category"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/middleware"
)

// SetupCategoryRoutes registers the category taxonomy. Reads are public;
// mutations require the admin API key.
func SetupCategoryRoutes(r *gin.Engine, db *gorm.DB) {
	categoryGroup := r.Group("/api/categories")
	{
		categoryGroup.GET("", categoryControllers.ListCategories(db))
		categoryGroup.POST("", middleware.ValidateAPIKey, categoryControllers.CreateCategory(db))
		categoryGroup.PUT("/:oldName", middleware.ValidateAPIKey, categoryControllers.UpdateCategory(db))
		categoryGroup.DELETE("/:name", middleware.ValidateAPIKey, categoryControllers.DeleteCategoryHandler(db))
	}
}
