package services

import (
	"errors"
	"math"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"gorm.io/gorm"
)

// ReviewService manages customer reviews. Update and delete are
// author-only; that check is row-level, so it lives here rather than in
// the role-gating middleware.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type ReviewFilters struct {
	MessID     uint
	CustomerID uint
}

type ReviewUpdate struct {
	Rating  *int
	Comment *string
}

// AverageRating is the mean rating of a mess rounded to one decimal.
type AverageRating struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

func (s *ReviewService) Create(customerID, messID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}
	var mess models.Mess
	if err := s.db.First(&mess, messID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("mess not found")
		}
		return nil, apperrors.Internal(err)
	}

	review := models.Review{
		CustomerID: customerID,
		MessID:     messID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return &review, nil
}

func (s *ReviewService) Get(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("Customer").Preload("Mess").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("review not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &review, nil
}

func (s *ReviewService) List(filters ReviewFilters) ([]models.Review, error) {
	query := s.db.Preload("Customer").Preload("Mess")
	if filters.MessID != 0 {
		query = query.Where("mess_id = ?", filters.MessID)
	}
	if filters.CustomerID != 0 {
		query = query.Where("customer_id = ?", filters.CustomerID)
	}

	reviews := []models.Review{}
	if err := query.Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return reviews, nil
}

func (s *ReviewService) ListByMess(messID uint) ([]models.Review, error) {
	return s.List(ReviewFilters{MessID: messID})
}

// Update modifies a review the caller authored.
func (s *ReviewService) Update(id, customerID uint, update ReviewUpdate) (*models.Review, error) {
	review, err := s.requireAuthored(id, customerID)
	if err != nil {
		return nil, err
	}
	changes := map[string]interface{}{}
	if update.Rating != nil {
		if *update.Rating < 1 || *update.Rating > 5 {
			return nil, apperrors.Validation("rating must be between 1 and 5")
		}
		changes["rating"] = *update.Rating
	}
	if update.Comment != nil {
		changes["comment"] = *update.Comment
	}
	if len(changes) > 0 {
		if err := s.db.Model(review).Updates(changes).Error; err != nil {
			return nil, apperrors.Internal(err)
		}
	}
	return review, nil
}

func (s *ReviewService) Delete(id, customerID uint) error {
	review, err := s.requireAuthored(id, customerID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(review).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// MessAverageRating computes the mean rating rounded to one decimal.
// A mess with no reviews yields {0, 0}, not an error.
func (s *ReviewService) MessAverageRating(messID uint) (*AverageRating, error) {
	var result struct {
		Avg   float64
		Count int
	}
	err := s.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("mess_id = ?", messID).
		Scan(&result).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &AverageRating{
		AverageRating: math.Round(result.Avg*10) / 10,
		TotalReviews:  result.Count,
	}, nil
}

func (s *ReviewService) requireAuthored(id, customerID uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("review not found")
		}
		return nil, apperrors.Internal(err)
	}
	if review.CustomerID != customerID {
		return nil, apperrors.Forbidden("you can only modify your own reviews")
	}
	return &review, nil
}
