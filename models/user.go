package models

import "time"

// Role defines allowed account roles in the system
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleOwner    Role = "OWNER"
	RoleAdmin    Role = "ADMIN"
)

// User is an inert account record. Password hashing and token issuance
// live in the services and token packages, never on the model.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Role         Role      `json:"role" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
