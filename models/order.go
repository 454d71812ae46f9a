package models

import "time"

// OrderStatus represents the states of an order's lifecycle
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// PaymentStatus tracks the payment side of an order
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// PaymentMethod enumerates accepted payment channels
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentCOD        PaymentMethod = "COD"
)

type Order struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	CustomerID      uint          `json:"customer_id" gorm:"not null"`
	Customer        User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items           []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalAmount     float64       `json:"total_amount" gorm:"not null"`
	DeliveryAddress string        `json:"delivery_address" gorm:"not null"`
	DeliveryPhone   string        `json:"delivery_phone" gorm:"not null"`
	Status          OrderStatus   `json:"status" gorm:"not null;default:'PLACED'"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"not null"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"not null;default:'PENDING'"`
	PaymentID       string        `json:"payment_id,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	DeliveryTime    *time.Time    `json:"delivery_time,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem is a value snapshot of one line at order time. Later meal
// price changes never alter past orders.
type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	MealID   uint    `json:"meal_id" gorm:"not null"`
	Meal     Meal    `json:"meal,omitempty" gorm:"foreignKey:MealID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`
}
