package otpControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/notifier"
	"gorm.io/gorm"
)

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// POST /api/otp/send
//
// The issued code travels only by email; it never appears in a response
// or an error message.
func SendOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
			return
		}

		code, err := CreateOTP(db, req.Email, DefaultTTLMinutes)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue verification code"})
			return
		}

		if err := notifier.SendOTPEmail(c.Request.Context(), req.Email, code, DefaultTTLMinutes); err != nil {
			log.Printf("Failed to deliver OTP email to %s: %v", req.Email, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send verification email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
	}
}

// POST /api/otp/verify
func VerifyOTPHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and code are required"})
			return
		}

		ok, err := VerifyOTP(db, req.Email, req.Code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify code"})
			return
		}
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"verified": false, "error": "Invalid or expired code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"verified": true, "message": "Code verified"})
	}
}

// POST /admin/otp/cleanup — external trigger for the periodic sweep.
func CleanupOTPs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		swept, err := CleanupExpiredOTPs(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean up codes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": swept})
	}
}
