package models

import "time"

// GuestSession anchors a guest cart before login; its ID is the cart
// owner key for anonymous visitors.
type GuestSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
