package models

import "time"

// Review is a customer's 1-5 rating of a mess. Mutation is restricted
// to the authoring customer at the service layer.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null"`
	Customer   User      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	MessID     uint      `json:"mess_id" gorm:"not null"`
	Mess       Mess      `json:"mess,omitempty" gorm:"foreignKey:MessID"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
