package otpControllers

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"gorm.io/gorm"
)

// DefaultTTLMinutes is how long an issued code stays valid.
const DefaultTTLMinutes = 10

var otpRange = big.NewInt(900000)

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpRange)
	if err != nil {
		return "", err
	}
	code := n.Int64() + 100000 // always 6 digits
	return big.NewInt(code).String(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateOTP issues a fresh 6-digit code for the email and returns it.
// Any unused prior codes for the email are invalidated first, so at most
// one active code exists per email. Delete and insert share one
// transaction.
func CreateOTP(db *gorm.DB, email string, ttlMinutes int) (string, error) {
	if ttlMinutes <= 0 {
		ttlMinutes = DefaultTTLMinutes
	}
	email = normalizeEmail(email)

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ? AND used = ?", email, false).
			Delete(&models.OTPVerification{}).Error; err != nil {
			return err
		}
		record := models.OTPVerification{
			Email:     email,
			Code:      code,
			ExpiresAt: time.Now().Add(time.Duration(ttlMinutes) * time.Minute),
			Used:      false,
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// VerifyOTP checks the most recently issued unused code for the email.
// Expired codes fail verification but stay in place for the sweep. On
// success the record flips to used and can never verify again.
func VerifyOTP(db *gorm.DB, email, code string) (bool, error) {
	var record models.OTPVerification
	err := db.Where("email = ? AND code = ? AND used = ?", normalizeEmail(email), code, false).
		Order("created_at DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if time.Now().After(record.ExpiresAt) {
		return false, nil
	}

	if err := db.Model(&models.OTPVerification{}).Where("id = ?", record.ID).
		Update("used", true).Error; err != nil {
		return false, err
	}
	return true, nil
}

// CleanupExpiredOTPs deletes every expired or already-used record and
// returns how many were swept. Still-valid unused codes are never
// touched.
func CleanupExpiredOTPs(db *gorm.DB) (int64, error) {
	result := db.Where("expires_at < ? OR used = ?", time.Now(), true).
		Delete(&models.OTPVerification{})
	return result.RowsAffected, result.Error
}
