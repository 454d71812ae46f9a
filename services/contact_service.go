package services

import (
	"errors"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"gorm.io/gorm"
)

// ContactService stores support messages. Creation is open to any
// authenticated account; reads and deletes are admin-only at the route
// layer.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// ContactGroup is the read-side aggregation of one author's messages.
type ContactGroup struct {
	User         UserSummary             `json:"user"`
	Messages     []models.ContactMessage `json:"messages"`
	MessageCount int                     `json:"message_count"`
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ContactStatistics struct {
	TotalContacts int64 `json:"total_contacts"`
	UniqueUsers   int64 `json:"unique_users"`
}

func (s *ContactService) Create(userID uint, name, email, message string) (*models.ContactMessage, error) {
	if userID == 0 || name == "" || email == "" || message == "" {
		return nil, apperrors.Validation("all fields are required")
	}
	contact := models.ContactMessage{
		UserID:  userID,
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return &contact, nil
}

func (s *ContactService) List() ([]models.ContactMessage, error) {
	contacts := []models.ContactMessage{}
	err := s.db.Preload("User").Order("created_at desc").Find(&contacts).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return contacts, nil
}

func (s *ContactService) Get(id uint) (*models.ContactMessage, error) {
	var contact models.ContactMessage
	if err := s.db.Preload("User").First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("contact message not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &contact, nil
}

// GroupByUser returns one group per distinct author with their messages
// and a count. This is computed on read, not stored.
func (s *ContactService) GroupByUser() ([]ContactGroup, error) {
	contacts := []models.ContactMessage{}
	err := s.db.Preload("User").Order("user_id, created_at desc").Find(&contacts).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	groups := []ContactGroup{}
	index := map[uint]int{}
	for _, contact := range contacts {
		i, seen := index[contact.UserID]
		if !seen {
			index[contact.UserID] = len(groups)
			groups = append(groups, ContactGroup{
				User: UserSummary{
					ID:    contact.User.ID,
					Name:  contact.User.Name,
					Email: contact.User.Email,
				},
			})
			i = len(groups) - 1
		}
		groups[i].Messages = append(groups[i].Messages, contact)
		groups[i].MessageCount++
	}
	return groups, nil
}

func (s *ContactService) Delete(id uint) error {
	var contact models.ContactMessage
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("contact message not found")
		}
		return apperrors.Internal(err)
	}
	if err := s.db.Delete(&contact).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// DeleteAll removes every contact message and returns the count.
func (s *ContactService) DeleteAll() (int64, error) {
	result := s.db.Where("1 = 1").Delete(&models.ContactMessage{})
	if result.Error != nil {
		return 0, apperrors.Internal(result.Error)
	}
	return result.RowsAffected, nil
}

func (s *ContactService) Statistics() (*ContactStatistics, error) {
	var stats ContactStatistics
	if err := s.db.Model(&models.ContactMessage{}).Count(&stats.TotalContacts).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	err := s.db.Model(&models.ContactMessage{}).
		Distinct("user_id").Count(&stats.UniqueUsers).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &stats, nil
}
