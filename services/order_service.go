package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/statemachine"

	"gorm.io/gorm"
)

// OrderService is the most stateful component: order creation snapshots
// meal lines, totals are server-computed, and status changes go through
// the forward-only state machine.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderItemInput struct {
	MealID   uint
	Quantity int
	Price    float64
}

type CreateOrderInput struct {
	Items           []OrderItemInput
	DeliveryAddress string
	DeliveryPhone   string
	Status          models.OrderStatus
	PaymentMethod   models.PaymentMethod
	PaymentStatus   models.PaymentStatus
	PaymentID       string
	Notes           string
	DeliveryTime    *time.Time
}

// MonthlySales groups revenue by calendar month of creation. Months of
// different years fold together; the original system behaves the same
// way.
type MonthlySales struct {
	Month      int     `json:"month"`
	Total      float64 `json:"monthly_sales"`
	OrderCount int     `json:"order_count"`
}

// TopMeal ranks a meal by total quantity sold across all orders.
type TopMeal struct {
	MealID        uint    `json:"meal_id"`
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// Create places an order. Every referenced meal must exist and be
// available at creation time. The total is computed from the
// client-supplied per-item price, not a re-fetched catalog price; that
// trust boundary is deliberate and matches the original system. The
// lookups and the insert run in one transaction so a concurrent meal
// deletion cannot leave a half-placed order.
func (s *OrderService) Create(customerID uint, input CreateOrderInput) (*models.Order, error) {
	status := input.Status
	if status == "" {
		status = models.StatusPlaced
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentPending
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			var meal models.Meal
			if err := tx.First(&meal, item.MealID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound(fmt.Sprintf("meal with id %d not found", item.MealID))
				}
				return apperrors.Internal(err)
			}
			if !meal.IsAvailable {
				return apperrors.Unavailable(fmt.Sprintf("meal with id %d is not available", item.MealID))
			}
			total += item.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				MealID:   item.MealID,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}

		order = models.Order{
			CustomerID:      customerID,
			Items:           items,
			TotalAmount:     total,
			DeliveryAddress: input.DeliveryAddress,
			DeliveryPhone:   input.DeliveryPhone,
			Status:          status,
			PaymentMethod:   input.PaymentMethod,
			PaymentStatus:   paymentStatus,
			PaymentID:       input.PaymentID,
			Notes:           input.Notes,
			DeliveryTime:    input.DeliveryTime,
		}
		if err := tx.Create(&order).Error; err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items.Meal").Preload("Customer").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("order with id %d not found", id))
		}
		return nil, apperrors.Internal(err)
	}
	return &order, nil
}

func (s *OrderService) ListAll() ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.Preload("Items.Meal").Preload("Customer").
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// UpdateStatus moves an order through the lifecycle. Transitions
// outside the forward-only table are rejected.
func (s *OrderService) UpdateStatus(id uint, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanTransition(order.Status, newStatus); err != nil {
		return nil, err
	}
	if err := s.db.Model(order).Update("status", newStatus).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

func (s *OrderService) GetUserOrders(customerID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.Preload("Items.Meal").
		Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

func (s *OrderService) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.Preload("Items.Meal").Preload("Customer").
		Where("status = ?", status).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

func (s *OrderService) GetWithinDateRange(start, end time.Time) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.Preload("Items.Meal").Preload("Customer").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return orders, nil
}

// ClearUserOrders bulk-deletes a customer's orders and their line items,
// returning how many orders were removed.
func (s *OrderService) ClearUserOrders(customerID uint) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("customer_id = ?", customerID).Delete(&models.Order{})
		if result.Error != nil {
			return apperrors.Internal(result.Error)
		}
		deleted = result.RowsAffected
		if err := tx.Where("order_id NOT IN (SELECT id FROM orders)").Delete(&models.OrderItem{}).Error; err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *OrderService) Delete(id uint) error {
	order, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return apperrors.Internal(err)
		}
		if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
}

// TotalSales sums totalAmount across all orders.
func (s *OrderService) TotalSales() (float64, error) {
	var total float64
	err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error
	if err != nil {
		return 0, apperrors.Internal(err)
	}
	return total, nil
}

// MonthlySales groups revenue and order counts by calendar month.
func (s *OrderService) MonthlySales() ([]MonthlySales, error) {
	rows := []MonthlySales{}
	err := s.db.Raw(`
		SELECT CAST(strftime('%m', created_at) AS INTEGER) AS month,
		       SUM(total_amount) AS total,
		       COUNT(*) AS order_count
		FROM orders
		GROUP BY month
		ORDER BY month`).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}

// TopSellingMeals ranks meals by summed quantity across all order
// lines, descending. Ties fall back to storage order.
func (s *OrderService) TopSellingMeals(limit int) ([]TopMeal, error) {
	if limit <= 0 {
		limit = 5
	}
	rows := []TopMeal{}
	err := s.db.Raw(`
		SELECT order_items.meal_id AS meal_id,
		       COALESCE(meals.name, '') AS name,
		       SUM(order_items.quantity) AS total_quantity,
		       SUM(order_items.quantity * order_items.price) AS total_revenue
		FROM order_items
		LEFT JOIN meals ON meals.id = order_items.meal_id
		GROUP BY order_items.meal_id
		ORDER BY total_quantity DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}
