package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config is built once at process start and injected everywhere;
// business logic never reads environment state directly.
type Config struct {
	Port              string
	DBPath            string
	JWTSecret         string
	JWTLifetime       time.Duration
	InitialAdminEmail string
	GinMode           string
}

func Load() Config {
	lifetimeHours := int64(72)
	if v := os.Getenv("JWT_LIFETIME_HOURS"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			lifetimeHours = parsed
		}
	}
	return Config{
		Port:              getEnv("PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "mamas_kitchen.db"),
		JWTSecret:         getEnv("JWT_SECRET", "mamas_kitchen_super_secret_2024"),
		JWTLifetime:       time.Duration(lifetimeHours) * time.Hour,
		InitialAdminEmail: os.Getenv("INITIAL_ADMIN_EMAIL"),
		GinMode:           os.Getenv("GIN_MODE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB connects to sqlite and migrates all models.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.CustomerProfile{},
		&models.OwnerProfile{},
		&models.Mess{},
		&models.Meal{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.ContactMessage{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
