package models

import "time"

// CustomerProfile holds delivery details for a customer account.
// Exactly one profile may exist per account.
type CustomerProfile struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User             User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Phone            string    `json:"phone" gorm:"not null"`
	Address          string    `json:"address" gorm:"not null"`
	ProfileCompleted bool      `json:"profile_completed" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OwnerProfile holds business contact details for a mess owner account.
type OwnerProfile struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User             User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Phone            string    `json:"phone" gorm:"not null"`
	Address          string    `json:"address" gorm:"not null"`
	ProfileCompleted bool      `json:"profile_completed" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
