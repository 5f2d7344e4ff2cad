package otpControllers_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	otpControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/otp"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(&models.OTPVerification{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}
	return db
}

func TestVerifyOTPSingleUse(t *testing.T) {
	db := newTestDB(t)

	code, err := otpControllers.CreateOTP(db, "kid@example.com", 10)
	assert.NoError(t, err)
	assert.Len(t, code, 6)

	// Wrong code fails and does not consume the record.
	ok, err := otpControllers.VerifyOTP(db, "kid@example.com", "000000")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Right code verifies exactly once.
	ok, err = otpControllers.VerifyOTP(db, "kid@example.com", code)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = otpControllers.VerifyOTP(db, "kid@example.com", code)
	assert.NoError(t, err)
	assert.False(t, ok, "a consumed code must never verify again")
}

func TestVerifyOTPNormalizesEmail(t *testing.T) {
	db := newTestDB(t)

	code, err := otpControllers.CreateOTP(db, "  Parent@Example.COM ", 10)
	assert.NoError(t, err)

	ok, err := otpControllers.VerifyOTP(db, "parent@example.com", code)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateOTPKeepsOneActiveCodePerEmail(t *testing.T) {
	db := newTestDB(t)

	first, err := otpControllers.CreateOTP(db, "kid@example.com", 10)
	assert.NoError(t, err)
	second, err := otpControllers.CreateOTP(db, "kid@example.com", 10)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.OTPVerification{}).
		Where("email = ? AND used = ?", "kid@example.com", false).Count(&count)
	assert.EqualValues(t, 1, count)

	// The superseded code is gone.
	ok, err := otpControllers.VerifyOTP(db, "kid@example.com", first)
	assert.NoError(t, err)
	if first != second {
		assert.False(t, ok)
	}

	ok, err = otpControllers.VerifyOTP(db, "kid@example.com", second)
	assert.NoError(t, err)
	if first != second {
		assert.True(t, ok)
	}
}

func TestVerifyOTPExpiredCodeFails(t *testing.T) {
	db := newTestDB(t)

	record := models.OTPVerification{
		Email:     "late@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	assert.NoError(t, db.Create(&record).Error)

	ok, err := otpControllers.VerifyOTP(db, "late@example.com", "123456")
	assert.NoError(t, err)
	assert.False(t, ok)

	// The expired row stays for the sweep to collect.
	var count int64
	db.Model(&models.OTPVerification{}).Where("email = ?", "late@example.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCleanupExpiredOTPsPreservesValidCodes(t *testing.T) {
	db := newTestDB(t)

	expired := models.OTPVerification{
		Email:     "old@example.com",
		Code:      "111111",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	consumed := models.OTPVerification{
		Email:     "done@example.com",
		Code:      "222222",
		ExpiresAt: time.Now().Add(time.Hour),
		Used:      true,
	}
	assert.NoError(t, db.Create(&expired).Error)
	assert.NoError(t, db.Create(&consumed).Error)

	liveCode, err := otpControllers.CreateOTP(db, "fresh@example.com", 10)
	assert.NoError(t, err)

	removed, err := otpControllers.CleanupExpiredOTPs(db)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	// The live code still verifies after the sweep.
	ok, err := otpControllers.VerifyOTP(db, "fresh@example.com", liveCode)
	assert.NoError(t, err)
	assert.True(t, ok)
}
