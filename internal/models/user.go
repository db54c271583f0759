package models

import (
	"time"
)

// Roles understood by the API
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User owns OAuth clients; its Role is copied into every token issued to them
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Role      string `gorm:"default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
