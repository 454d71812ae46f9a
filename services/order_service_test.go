package services

import (
	"testing"
	"time"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderFixtures(t *testing.T) (*OrderService, *models.User, *models.Meal, *models.Meal) {
	t.Helper()
	db := setupTestDB(t)
	owner := createUser(t, db, "Omar", "omar@x.com", models.RoleOwner)
	customer := createUser(t, db, "Carla", "carla@x.com", models.RoleCustomer)
	mess := createMess(t, db, owner.ID, "Annapurna Mess", "Koramangala")
	thali := createMeal(t, db, mess.ID, "Veg Thali", 120, true)
	curry := createMeal(t, db, mess.ID, "Chicken Curry", 180, true)
	return NewOrderService(db), customer, thali, curry
}

func TestOrderCreateComputesTotal(t *testing.T) {
	svc, customer, thali, curry := orderFixtures(t)

	order, err := svc.Create(customer.ID, CreateOrderInput{
		Items: []OrderItemInput{
			{MealID: thali.ID, Quantity: 2, Price: 120},
			{MealID: curry.ID, Quantity: 1, Price: 180},
		},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentCOD,
	})
	require.NoError(t, err)

	assert.Equal(t, 2*120.0+180.0, order.TotalAmount)
	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
}

func TestOrderCreateUnknownMeal(t *testing.T) {
	svc, customer, _, _ := orderFixtures(t)

	_, err := svc.Create(customer.ID, CreateOrderInput{
		Items:           []OrderItemInput{{MealID: 999, Quantity: 1, Price: 100}},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentCOD,
	})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestOrderCreateUnavailableMealPersistsNothing(t *testing.T) {
	svc, customer, thali, curry := orderFixtures(t)
	require.NoError(t, svc.db.Model(curry).Update("is_available", false).Error)

	_, err := svc.Create(customer.ID, CreateOrderInput{
		Items: []OrderItemInput{
			{MealID: thali.ID, Quantity: 1, Price: 120},
			{MealID: curry.ID, Quantity: 1, Price: 180},
		},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentUPI,
	})
	assert.Equal(t, apperrors.KindUnavailable, apperrors.KindOf(err))

	var orders, items int64
	require.NoError(t, svc.db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, svc.db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestOrderItemSnapshotSurvivesMealEdit(t *testing.T) {
	svc, customer, thali, _ := orderFixtures(t)

	order, err := svc.Create(customer.ID, CreateOrderInput{
		Items:           []OrderItemInput{{MealID: thali.ID, Quantity: 1, Price: 120}},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentCOD,
	})
	require.NoError(t, err)

	require.NoError(t, svc.db.Model(thali).Update("price", 999).Error)

	reloaded, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, reloaded.Items[0].Price)
	assert.Equal(t, 120.0, reloaded.TotalAmount)
}

func TestOrderUpdateStatusTransitions(t *testing.T) {
	svc, customer, thali, _ := orderFixtures(t)
	order, err := svc.Create(customer.ID, CreateOrderInput{
		Items:           []OrderItemInput{{MealID: thali.ID, Quantity: 1, Price: 120}},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentCOD,
	})
	require.NoError(t, err)

	// PLACED cannot skip straight to DELIVERED
	_, err = svc.UpdateStatus(order.ID, models.StatusDelivered)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))

	_, err = svc.UpdateStatus(order.ID, models.StatusPreparing)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(order.ID, models.StatusDelivered)
	require.NoError(t, err)

	// DELIVERED is terminal
	_, err = svc.UpdateStatus(order.ID, models.StatusCancelled)
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))

	_, err = svc.UpdateStatus(999, models.StatusPreparing)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestOrderQueriesReturnEmptySlices(t *testing.T) {
	svc, customer, _, _ := orderFixtures(t)

	orders, err := svc.GetUserOrders(customer.ID)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	orders, err = svc.GetByStatus(models.StatusDelivered)
	require.NoError(t, err)
	assert.Empty(t, orders)

	orders, err = svc.GetWithinDateRange(time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClearUserOrders(t *testing.T) {
	svc, customer, thali, _ := orderFixtures(t)
	for i := 0; i < 3; i++ {
		_, err := svc.Create(customer.ID, CreateOrderInput{
			Items:           []OrderItemInput{{MealID: thali.ID, Quantity: 1, Price: 120}},
			DeliveryAddress: "12 Main Street, Springfield",
			DeliveryPhone:   "9876543210",
			PaymentMethod:   models.PaymentCOD,
		})
		require.NoError(t, err)
	}

	deleted, err := svc.ClearUserOrders(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	var items int64
	require.NoError(t, svc.db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, items)

	deleted, err = svc.ClearUserOrders(customer.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestOrderAnalytics(t *testing.T) {
	svc, customer, thali, curry := orderFixtures(t)
	_, err := svc.Create(customer.ID, CreateOrderInput{
		Items: []OrderItemInput{
			{MealID: thali.ID, Quantity: 2, Price: 120},
			{MealID: curry.ID, Quantity: 1, Price: 180},
		},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentCOD,
	})
	require.NoError(t, err)
	_, err = svc.Create(customer.ID, CreateOrderInput{
		Items:           []OrderItemInput{{MealID: thali.ID, Quantity: 3, Price: 120}},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentUPI,
	})
	require.NoError(t, err)

	total, err := svc.TotalSales()
	require.NoError(t, err)
	assert.Equal(t, 420.0+360.0, total)

	monthly, err := svc.MonthlySales()
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.Equal(t, int(time.Now().Month()), monthly[0].Month)
	assert.Equal(t, 780.0, monthly[0].Total)
	assert.Equal(t, 2, monthly[0].OrderCount)

	top, err := svc.TopSellingMeals(5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, thali.ID, top[0].MealID)
	assert.Equal(t, 5, top[0].TotalQuantity)
	assert.Equal(t, 600.0, top[0].TotalRevenue)
	assert.Equal(t, curry.ID, top[1].MealID)

	top, err = svc.TopSellingMeals(1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestOrderDelete(t *testing.T) {
	svc, customer, thali, _ := orderFixtures(t)
	order, err := svc.Create(customer.ID, CreateOrderInput{
		Items:           []OrderItemInput{{MealID: thali.ID, Quantity: 1, Price: 120}},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentCOD,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(order.ID))

	_, err = svc.Get(order.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	var items int64
	require.NoError(t, svc.db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, items)

	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(svc.Delete(order.ID)))
}
