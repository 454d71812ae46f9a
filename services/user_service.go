package services

import (
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"gorm.io/gorm"
)

// UserService serves admin-side account listings and statistics.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserStatistics struct {
	TotalUsers     int64 `json:"total_users"`
	TotalCustomers int64 `json:"total_customers"`
	TotalOwners    int64 `json:"total_owners"`
}

// ListUsers returns all accounts, optionally filtered by role. Password
// hashes never serialize (json:"-").
func (s *UserService) ListUsers(role models.Role) ([]models.User, error) {
	query := s.db.Order("created_at desc")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	users := []models.User{}
	if err := query.Find(&users).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

func (s *UserService) ListCustomerProfiles() ([]models.CustomerProfile, error) {
	profiles := []models.CustomerProfile{}
	if err := s.db.Preload("User").Find(&profiles).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return profiles, nil
}

func (s *UserService) ListOwnerProfiles() ([]models.OwnerProfile, error) {
	profiles := []models.OwnerProfile{}
	if err := s.db.Preload("User").Find(&profiles).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return profiles, nil
}

func (s *UserService) Statistics() (*UserStatistics, error) {
	var stats UserStatistics
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.db.Model(&models.CustomerProfile{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.db.Model(&models.OwnerProfile{}).Count(&stats.TotalOwners).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return &stats, nil
}
