package models

import "time"

// OTPVerification is a single-use email code. At most one unused,
// unexpired row exists per email; issuing a new code deletes prior
// unused rows first.
type OTPVerification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"index;not null" json:"email"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

func (OTPVerification) TableName() string { return "otp_verifications" }
