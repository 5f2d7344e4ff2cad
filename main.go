package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adminControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/admin"
	otpControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/otp"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.AdminUser{},
		&models.Product{},
		&models.Category{},
		&models.CartItem{},
		&models.LikedProduct{},
		&models.Order{},
		&models.OTPVerification{},
		&models.GuestSession{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the default admin account if none exists yet.
	created, err := adminControllers.BootstrapDefaultAdmin(
		db,
		os.Getenv("ADMIN_EMAIL"),
		os.Getenv("ADMIN_PASSWORD"),
		os.Getenv("ADMIN_NAME"),
	)
	if err != nil {
		log.Printf("⚠️ Admin bootstrap failed: %v", err)
	} else if created {
		log.Println("✅ Default admin account created")
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Sweep expired OTP codes hourly
	go startOTPSweep(db, time.Hour)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startOTPSweep periodically removes expired and consumed OTP codes.
func startOTPSweep(db *gorm.DB, interval time.Duration) {
	for {
		time.Sleep(interval)
		removed, err := otpControllers.CleanupExpiredOTPs(db)
		if err != nil {
			log.Printf("❌ OTP cleanup failed: %v", err)
			continue
		}
		if removed > 0 {
			log.Printf("🗑️ Removed %d expired OTP codes", removed)
		}
	}
}
