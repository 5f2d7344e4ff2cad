package models

import "time"

// CartItem is one cart line. Exactly one of CustomerID or SessionID is
// set; a line's identity is owner + product + size + color, where NULL
// size/color only ever matches NULL.
type CartItem struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID *uint     `gorm:"index" json:"customer_id"`
	SessionID  *string   `gorm:"index" json:"session_id"`
	ProductID  uint      `gorm:"not null" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Size       *string   `json:"size"`
	Color      *string   `json:"color"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
