package models

import "time"

// AdminUser rows live in the "users" table; only role=admin rows can
// reach the dashboard endpoints.
type AdminUser struct {
	ID           string `gorm:"primaryKey" json:"id"` // UUID
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	Role         string `gorm:"default:'admin'" json:"role"`
	Phone        *string
	Avatar       *string
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AdminUser) TableName() string { return "users" }
