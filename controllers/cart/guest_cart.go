package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddGuestCartItemRequest struct {
	SessionID string  `json:"session_id" binding:"required"`
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Size      *string `json:"size"`
	Color     *string `json:"color"`
}

type MergeCartRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required"`
}

// GET /api/cart/session/:sessionId
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
			return
		}
		items, err := GetCartItemsBySessionID(db, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/cart/guest/add
func AddGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddGuestCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id, err := AddCartItem(db, CartItemInput{
			SessionID: &req.SessionID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Size:      req.Size,
			Color:     req.Color,
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to guest cart"})
			return
		}

		item, err := GetCartItemByID(db, id)
		if err != nil || item == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /api/cart/guest/:cartItemId
func DeleteGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartItemID, err := strconv.ParseUint(c.Param("cartItemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}
		ok, err := RemoveCartItem(db, uint(cartItemID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from guest cart"})
	}
}

// POST /api/cart/merge
func MergeGuestCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MergeCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and customer_id are required"})
			return
		}
		if err := MergeGuestCart(db, req.SessionID, req.CustomerID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to merge guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart merged successfully"})
	}
}
