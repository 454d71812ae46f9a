package services

import (
	"testing"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealCreateRequiresMessOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	owner := createUser(t, db, "Omar", "omar@x.com", models.RoleOwner)
	other := createUser(t, db, "Nina", "nina@x.com", models.RoleOwner)
	mess := createMess(t, db, owner.ID, "Annapurna Mess", "Koramangala")

	input := CreateMealInput{
		MessID:      mess.ID,
		Name:        "Veg Thali",
		MealType:    models.MealLunch,
		IsVeg:       true,
		Description: "Rice, dal, two curries and salad",
		Price:       120,
	}

	_, err := svc.Create(other.ID, input)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	meal, err := svc.Create(owner.ID, input)
	require.NoError(t, err)
	assert.True(t, meal.IsAvailable)

	// Unknown mess is NotFound
	input.MessID = 999
	_, err = svc.Create(owner.ID, input)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestMealListFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	owner := createUser(t, db, "Omar", "omar@x.com", models.RoleOwner)
	mess := createMess(t, db, owner.ID, "Annapurna Mess", "Koramangala")

	veg := createMeal(t, db, mess.ID, "Veg Thali", 120, true)
	require.NoError(t, db.Model(veg).Update("is_veg", true).Error)
	createMeal(t, db, mess.ID, "Chicken Curry", 180, true)
	createMeal(t, db, mess.ID, "Paneer Special", 150, false)

	meals, err := svc.List(MealFilters{MessID: mess.ID})
	require.NoError(t, err)
	assert.Len(t, meals, 3)

	isVeg := true
	meals, err = svc.List(MealFilters{MessID: mess.ID, IsVeg: &isVeg})
	require.NoError(t, err)
	assert.Len(t, meals, 1)
	assert.Equal(t, "Veg Thali", meals[0].Name)

	available := true
	meals, err = svc.List(MealFilters{MessID: mess.ID, IsAvailable: &available})
	require.NoError(t, err)
	assert.Len(t, meals, 2)

	meals, err = svc.List(MealFilters{MealType: models.MealBreakfast})
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestMealUpdateAndDeleteOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	owner := createUser(t, db, "Omar", "omar@x.com", models.RoleOwner)
	other := createUser(t, db, "Nina", "nina@x.com", models.RoleOwner)
	mess := createMess(t, db, owner.ID, "Annapurna Mess", "Koramangala")
	meal := createMeal(t, db, mess.ID, "Veg Thali", 120, true)

	price := 140.0
	_, err := svc.Update(meal.ID, other.ID, MealUpdate{Price: &price})
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	updated, err := svc.Update(meal.ID, owner.ID, MealUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 140.0, updated.Price)

	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(svc.Delete(meal.ID, other.ID)))
	require.NoError(t, svc.Delete(meal.ID, owner.ID))

	_, err = svc.Get(meal.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestMealCreatedUnavailableStaysUnavailable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	owner := createUser(t, db, "Omar", "omar@x.com", models.RoleOwner)
	customer := createUser(t, db, "Carla", "carla@x.com", models.RoleCustomer)
	mess := createMess(t, db, owner.ID, "Annapurna Mess", "Koramangala")

	unavailable := false
	meal, err := svc.Create(owner.ID, CreateMealInput{
		MessID:      mess.ID,
		Name:        "Seasonal Special",
		MealType:    models.MealDinner,
		Description: "Only served when ingredients are in",
		Price:       160,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, meal.IsAvailable)

	// The stored row must carry the explicit false, not a column default
	var stored models.Meal
	require.NoError(t, db.First(&stored, meal.ID).Error)
	assert.False(t, stored.IsAvailable)

	_, err = NewOrderService(db).Create(customer.ID, CreateOrderInput{
		Items:           []OrderItemInput{{MealID: meal.ID, Quantity: 1, Price: 160}},
		DeliveryAddress: "12 Main Street, Springfield",
		DeliveryPhone:   "9876543210",
		PaymentMethod:   models.PaymentCOD,
	})
	assert.Equal(t, apperrors.KindUnavailable, apperrors.KindOf(err))
}
