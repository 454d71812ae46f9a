package models

import "time"

// MealType enumerates the serving slots a meal can belong to
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type Meal struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MessID      uint      `json:"mess_id" gorm:"not null"`
	Mess        Mess      `json:"mess,omitempty" gorm:"foreignKey:MessID"`
	Name        string    `json:"name" gorm:"not null"`
	MealType    MealType  `json:"meal_type" gorm:"not null"`
	IsVeg       bool      `json:"is_veg" gorm:"default:false"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	// No gorm default tag: gorm drops zero-valued fields carrying one
	// from the INSERT, which would silently flip false back to true.
	// The service applies the default before insert instead.
	IsAvailable bool `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
