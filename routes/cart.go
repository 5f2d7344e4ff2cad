package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/cart"
	wishlistControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/wishlist"
)

// SetupCartRoutes registers the customer cart, the guest (session) cart,
// the merge endpoint and the wishlist.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/api/cart")
	{
		cartGroup.GET("/:customerId", cartControllers.GetCustomerCart(db))
		cartGroup.POST("/add", cartControllers.AddCustomerCartItem(db))
		cartGroup.PUT("/:cartItemId", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:cartItemId", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("/clear/:customerId", cartControllers.ClearCustomerCart(db))

		cartGroup.GET("/session/:sessionId", cartControllers.GetGuestCart(db))
		cartGroup.POST("/guest/add", cartControllers.AddGuestCartItem(db))
		cartGroup.PUT("/guest/:cartItemId", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/guest/:cartItemId", cartControllers.DeleteGuestCartItem(db))

		cartGroup.POST("/merge", cartControllers.MergeGuestCartHandler(db))
	}

	likedGroup := r.Group("/api/liked-products")
	{
		likedGroup.GET("/:customerId", wishlistControllers.GetLikedProductsHandler(db))
		likedGroup.POST("/toggle", wishlistControllers.ToggleLikedProductHandler(db))
	}
}
