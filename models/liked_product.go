package models

import "time"

type LikedProduct struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `gorm:"uniqueIndex:idx_liked_customer_product" json:"customer_id"`
	ProductID  uint      `gorm:"uniqueIndex:idx_liked_customer_product" json:"product_id"`
	CreatedAt  time.Time `json:"created_at"`
}
