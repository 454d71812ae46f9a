package services

import (
	"errors"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"gorm.io/gorm"
)

// ProfileService manages the 1:1 customer and owner profiles.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileUpdate carries the partial fields of a profile update; nil
// means unchanged.
type ProfileUpdate struct {
	Phone   *string
	Address *string
}

func (u ProfileUpdate) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Phone != nil {
		changes["phone"] = *u.Phone
	}
	if u.Address != nil {
		changes["address"] = *u.Address
	}
	return changes
}

// Customer profile

// CreateCustomerProfile creates the single profile for an account; a
// second attempt fails with a duplicate error.
func (s *ProfileService) CreateCustomerProfile(userID uint, phone, address string) (*models.CustomerProfile, error) {
	var existing models.CustomerProfile
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, apperrors.Duplicate("customer profile already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	profile := models.CustomerProfile{
		UserID:           userID,
		Phone:            phone,
		Address:          address,
		ProfileCompleted: true,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return &profile, nil
}

func (s *ProfileService) GetCustomerProfile(userID uint) (*models.CustomerProfile, error) {
	var profile models.CustomerProfile
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("customer profile not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &profile, nil
}

func (s *ProfileService) UpdateCustomerProfile(userID uint, update ProfileUpdate) (*models.CustomerProfile, error) {
	profile, err := s.GetCustomerProfile(userID)
	if err != nil {
		return nil, err
	}
	if changes := update.changes(); len(changes) > 0 {
		if err := s.db.Model(profile).Updates(changes).Error; err != nil {
			return nil, apperrors.Internal(err)
		}
	}
	return profile, nil
}

// Owner profile

func (s *ProfileService) CreateOwnerProfile(userID uint, phone, address string) (*models.OwnerProfile, error) {
	var existing models.OwnerProfile
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, apperrors.Duplicate("owner profile already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	profile := models.OwnerProfile{
		UserID:           userID,
		Phone:            phone,
		Address:          address,
		ProfileCompleted: true,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return &profile, nil
}

func (s *ProfileService) GetOwnerProfile(userID uint) (*models.OwnerProfile, error) {
	var profile models.OwnerProfile
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("owner profile not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &profile, nil
}

func (s *ProfileService) UpdateOwnerProfile(userID uint, update ProfileUpdate) (*models.OwnerProfile, error) {
	profile, err := s.GetOwnerProfile(userID)
	if err != nil {
		return nil, err
	}
	if changes := update.changes(); len(changes) > 0 {
		if err := s.db.Model(profile).Updates(changes).Error; err != nil {
			return nil, apperrors.Internal(err)
		}
	}
	return profile, nil
}
