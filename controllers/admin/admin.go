package adminControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateAdminUser inserts an admin account with a bcrypt-hashed password
// and returns its id. Returns false when the email is taken.
func CreateAdminUser(db *gorm.DB, email, password, name string) (string, bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", false, err
	}

	admin := models.AdminUser{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Name:         name,
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", false, nil
		}
		return "", false, err
	}
	return admin.ID, true, nil
}

// BootstrapDefaultAdmin creates the initial admin account exactly once:
// it is a no-op whenever any admin row already exists, so restarts and
// concurrent deploys can all call it. Returns whether an account was
// created.
func BootstrapDefaultAdmin(db *gorm.DB, email, password, name string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	_, created, err := CreateAdminUser(db, email, password, name)
	return created, err
}

// POST /api/auth/login — dashboard login; admin role required.
func AdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		var admin models.AdminUser
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if !strings.EqualFold(admin.Role, "admin") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin role required."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    admin,
			"message": "Login successful",
		})
	}
}
