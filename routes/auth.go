package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nanoflowsai-afk/prince-and-princess-backend/auth"
	adminControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/admin"
	otpControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/otp"
)

// SetupAuthRoutes registers guest-session creation, the admin dashboard
// login, and the OTP endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(db))
		authGroup.POST("/login", adminControllers.AdminLoginHandler(db))
	}

	otpGroup := r.Group("/api/otp")
	{
		otpGroup.POST("/send", otpControllers.SendOTP(db))
		otpGroup.POST("/verify", otpControllers.VerifyOTPHandler(db))
	}
}
