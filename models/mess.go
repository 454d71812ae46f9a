package models

import "time"

// Mess is a catering business owned by one OWNER account.
// An owner may run multiple messes.
type Mess struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"not null"`
	Owner       User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string    `json:"name" gorm:"not null"`
	Area        string    `json:"area" gorm:"not null"`
	Phone       string    `json:"phone" gorm:"not null"`
	Address     string    `json:"address" gorm:"not null"`
	Description string    `json:"description"`
	// No gorm default tag, so an explicit false survives the INSERT.
	// The service applies the true default before insert.
	IsActive bool `json:"is_active"`
	Meals       []Meal    `json:"meals,omitempty" gorm:"foreignKey:MessID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
