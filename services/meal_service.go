package services

import (
	"errors"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"gorm.io/gorm"
)

// MealService manages the sellable items of a mess. Meal ownership is
// transitively the mess owner, so every mutation resolves the parent
// mess first.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type CreateMealInput struct {
	MessID      uint
	Name        string
	MealType    models.MealType
	IsVeg       bool
	Description string
	Price       float64
	IsAvailable *bool
}

type MealFilters struct {
	MessID      uint
	MealType    models.MealType
	IsVeg       *bool
	IsAvailable *bool
}

type MealUpdate struct {
	Name        *string
	MealType    *models.MealType
	IsVeg       *bool
	Description *string
	Price       *float64
	IsAvailable *bool
}

func (u MealUpdate) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.MealType != nil {
		changes["meal_type"] = *u.MealType
	}
	if u.IsVeg != nil {
		changes["is_veg"] = *u.IsVeg
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Price != nil {
		changes["price"] = *u.Price
	}
	if u.IsAvailable != nil {
		changes["is_available"] = *u.IsAvailable
	}
	return changes
}

// Create adds a meal to a mess the caller owns. The mess id is always
// explicit; there is no "first mess" guessing.
func (s *MealService) Create(ownerID uint, input CreateMealInput) (*models.Meal, error) {
	if err := s.requireMessOwned(input.MessID, ownerID); err != nil {
		return nil, err
	}
	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}
	meal := models.Meal{
		MessID:      input.MessID,
		Name:        input.Name,
		MealType:    input.MealType,
		IsVeg:       input.IsVeg,
		Description: input.Description,
		Price:       input.Price,
		IsAvailable: available,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return &meal, nil
}

func (s *MealService) Get(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.Preload("Mess").First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("meal not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &meal, nil
}

// List returns meals matching the filters; no match is an empty slice.
func (s *MealService) List(filters MealFilters) ([]models.Meal, error) {
	query := s.db.Preload("Mess")
	if filters.MessID != 0 {
		query = query.Where("mess_id = ?", filters.MessID)
	}
	if filters.MealType != "" {
		query = query.Where("meal_type = ?", filters.MealType)
	}
	if filters.IsVeg != nil {
		query = query.Where("is_veg = ?", *filters.IsVeg)
	}
	if filters.IsAvailable != nil {
		query = query.Where("is_available = ?", *filters.IsAvailable)
	}

	meals := []models.Meal{}
	if err := query.Order("created_at desc").Find(&meals).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return meals, nil
}

func (s *MealService) Update(id, ownerID uint, update MealUpdate) (*models.Meal, error) {
	meal, err := s.requireMealOwned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if changes := update.changes(); len(changes) > 0 {
		if err := s.db.Model(meal).Updates(changes).Error; err != nil {
			return nil, apperrors.Internal(err)
		}
	}
	return meal, nil
}

func (s *MealService) Delete(id, ownerID uint) error {
	meal, err := s.requireMealOwned(id, ownerID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(meal).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *MealService) requireMessOwned(messID, ownerID uint) error {
	var mess models.Mess
	if err := s.db.First(&mess, messID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("mess not found")
		}
		return apperrors.Internal(err)
	}
	if mess.OwnerID != ownerID {
		return apperrors.Forbidden("you do not own this mess")
	}
	return nil
}

func (s *MealService) requireMealOwned(mealID, ownerID uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("meal not found")
		}
		return nil, apperrors.Internal(err)
	}
	if err := s.requireMessOwned(meal.MessID, ownerID); err != nil {
		return nil, err
	}
	return &meal, nil
}
