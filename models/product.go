package models

import "time"

// Product is referenced by cart lines and order snapshots. Category is a
// weak reference by name: taxonomy changes rewrite this column in bulk.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"index;not null" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `json:"quantity"`
	Size        *string `json:"size"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Gender      *string `json:"gender"`
	Image       string  `json:"image"`
	HoverImage  *string `json:"hover_image"`
	// SizeStock holds per-size stock counts as JSON, e.g. {"16": 5, "18": 0}.
	SizeStock *string   `gorm:"type:text" json:"size_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
