package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"gorm.io/gorm"
)

type ToggleLikedProductRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
	ProductID  uint `json:"product_id" binding:"required"`
}

func GetLikedProductsByCustomerID(db *gorm.DB, customerID uint) ([]models.LikedProduct, error) {
	var liked []models.LikedProduct
	err := db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&liked).Error
	return liked, err
}

func IsProductLiked(db *gorm.DB, customerID, productID uint) (bool, error) {
	var count int64
	err := db.Model(&models.LikedProduct{}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).Count(&count).Error
	return count > 0, err
}

// ToggleLikedProduct flips a product's wishlist membership and reports
// the new state (true = liked).
func ToggleLikedProduct(db *gorm.DB, customerID, productID uint) (bool, error) {
	liked, err := IsProductLiked(db, customerID, productID)
	if err != nil {
		return false, err
	}

	if liked {
		err := db.Where("customer_id = ? AND product_id = ?", customerID, productID).
			Delete(&models.LikedProduct{}).Error
		return false, err
	}

	entry := models.LikedProduct{CustomerID: customerID, ProductID: productID}
	if err := db.Create(&entry).Error; err != nil {
		// A concurrent like landed first; the product is liked either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// GET /api/liked-products/:customerId
func GetLikedProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := strconv.ParseUint(c.Param("customerId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}
		liked, err := GetLikedProductsByCustomerID(db, uint(customerID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch liked products"})
			return
		}
		c.JSON(http.StatusOK, liked)
	}
}

// POST /api/liked-products/toggle
func ToggleLikedProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleLikedProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id and product_id are required"})
			return
		}
		isLiked, err := ToggleLikedProduct(db, req.CustomerID, req.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle liked product"})
			return
		}
		message := "Product removed from wishlist"
		if isLiked {
			message = "Product added to wishlist"
		}
		c.JSON(http.StatusOK, gin.H{"isLiked": isLiked, "message": message})
	}
}
