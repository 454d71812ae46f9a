package services

import (
	"path/filepath"
	"testing"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/config"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh migrated sqlite database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	user := &models.User{Role: role, Name: name, Email: email, PasswordHash: hash}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createMess(t *testing.T, db *gorm.DB, ownerID uint, name, area string) *models.Mess {
	t.Helper()
	mess := &models.Mess{
		OwnerID:     ownerID,
		Name:        name,
		Area:        area,
		Phone:       "9876543210",
		Address:     "12 Main Street, Springfield",
		Description: "Home style meals served daily",
		IsActive:    true,
	}
	require.NoError(t, db.Create(mess).Error)
	return mess
}

func createMeal(t *testing.T, db *gorm.DB, messID uint, name string, price float64, available bool) *models.Meal {
	t.Helper()
	meal := &models.Meal{
		MessID:      messID,
		Name:        name,
		MealType:    models.MealLunch,
		Description: "A filling lunch thali with rice",
		Price:       price,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(meal).Error)
	return meal
}
