package services

import (
	"errors"
	"strings"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"gorm.io/gorm"
)

// MessService manages catering businesses. An owner may run several
// messes; ownership checks gate all mutation.
type MessService struct {
	db *gorm.DB
}

func NewMessService(db *gorm.DB) *MessService {
	return &MessService{db: db}
}

type CreateMessInput struct {
	Name        string
	Area        string
	Phone       string
	Address     string
	Description string
	IsActive    *bool
}

type MessFilters struct {
	Area       string
	Search     string
	ActiveOnly bool
}

type MessUpdate struct {
	Name        *string
	Area        *string
	Phone       *string
	Address     *string
	Description *string
	IsActive    *bool
}

func (u MessUpdate) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Area != nil {
		changes["area"] = *u.Area
	}
	if u.Phone != nil {
		changes["phone"] = *u.Phone
	}
	if u.Address != nil {
		changes["address"] = *u.Address
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.IsActive != nil {
		changes["is_active"] = *u.IsActive
	}
	return changes
}

func (s *MessService) Create(ownerID uint, input CreateMessInput) (*models.Mess, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	mess := models.Mess{
		OwnerID:     ownerID,
		Name:        input.Name,
		Area:        input.Area,
		Phone:       input.Phone,
		Address:     input.Address,
		Description: input.Description,
		IsActive:    active,
	}
	if err := s.db.Create(&mess).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return &mess, nil
}

func (s *MessService) Get(id uint) (*models.Mess, error) {
	var mess models.Mess
	if err := s.db.Preload("Owner").First(&mess, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("mess not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &mess, nil
}

// List returns messes matching the filters. A filter matching nothing
// yields an empty slice, never an error.
func (s *MessService) List(filters MessFilters) ([]models.Mess, error) {
	query := s.db.Preload("Owner")
	if filters.Area != "" {
		query = query.Where("LOWER(area) LIKE ?", "%"+strings.ToLower(filters.Area)+"%")
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	messes := []models.Mess{}
	if err := query.Order("created_at desc").Find(&messes).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return messes, nil
}

func (s *MessService) ListByOwner(ownerID uint) ([]models.Mess, error) {
	messes := []models.Mess{}
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&messes).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return messes, nil
}

// Update applies a partial update after verifying the caller owns the
// mess.
func (s *MessService) Update(id, ownerID uint, update MessUpdate) (*models.Mess, error) {
	mess, err := s.requireOwned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if changes := update.changes(); len(changes) > 0 {
		if err := s.db.Model(mess).Updates(changes).Error; err != nil {
			return nil, apperrors.Internal(err)
		}
	}
	return mess, nil
}

func (s *MessService) Delete(id, ownerID uint) error {
	mess, err := s.requireOwned(id, ownerID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(mess).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// VerifyOwnership reports whether the account owns the mess. Absence of
// the mess is NotFound, not false.
func (s *MessService) VerifyOwnership(messID, accountID uint) (bool, error) {
	var mess models.Mess
	if err := s.db.First(&mess, messID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.NotFound("mess not found")
		}
		return false, apperrors.Internal(err)
	}
	return mess.OwnerID == accountID, nil
}

func (s *MessService) requireOwned(id, ownerID uint) (*models.Mess, error) {
	var mess models.Mess
	if err := s.db.First(&mess, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("mess not found")
		}
		return nil, apperrors.Internal(err)
	}
	if mess.OwnerID != ownerID {
		return nil, apperrors.Forbidden("you do not own this mess")
	}
	return &mess, nil
}
