package customerControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/auth"
	cartControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/cart"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Optional guest session to fold into the customer's cart on login.
	SessionID *string `json:"session_id"`
}

// POST /api/customer/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email, password, and name are required"})
			return
		}

		customer, created, err := CreateCustomer(db, req.Email, req.Password, req.Name, req.Phone)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register customer"})
			return
		}
		if !created {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"customer": customer,
			"message":  "Registration successful",
		})
	}
}

// POST /api/customer/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		customer, err := AuthenticateCustomer(db, req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}
		if customer == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		// A guest cart carried into login folds into the customer's cart.
		if req.SessionID != nil && *req.SessionID != "" {
			if err := cartControllers.MergeGuestCart(db, *req.SessionID, customer.ID); err != nil {
				log.Printf("Failed to merge guest cart %s into customer %d: %v", *req.SessionID, customer.ID, err)
			}
		}

		token, err := auth.IssueCustomerToken(customer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"customer": customer,
			"token":    token,
			"message":  "Login successful",
		})
	}
}

// GET /api/customer/:id
func GetCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}
		customer, err := GetCustomerByID(db, uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}
		if customer == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// PUT /api/customer — JWT-protected; the id comes from the token.
func UpdateCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, exists := c.Get("customer_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := customerID.(uint)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var patch CustomerPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ok, err := ApplyCustomerPatch(db, id, patch)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found or nothing to update"})
			return
		}

		customer, err := GetCustomerByID(db, id)
		if err != nil || customer == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}
