package services

import (
	"errors"
	"strings"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/token"

	"gorm.io/gorm"
)

// AuthService handles registration and login. Logout is stateless: the
// handler clears the cookie and the token stays valid until expiry.
type AuthService struct {
	db         *gorm.DB
	tokens     *token.Service
	adminEmail string
}

func NewAuthService(db *gorm.DB, tokens *token.Service, adminEmail string) *AuthService {
	return &AuthService{db: db, tokens: tokens, adminEmail: strings.ToLower(adminEmail)}
}

// Register creates an account and returns it with a signed token.
// Emails are trimmed and lowercased before the uniqueness check. There
// is no registration path to ADMIN; the one configured initial admin
// email is promoted here instead.
func (s *AuthService) Register(name, email, password string, role models.Role) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", apperrors.Duplicate("user with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperrors.Internal(err)
	}

	if role != models.RoleCustomer && role != models.RoleOwner {
		return nil, "", apperrors.Validation("role must be CUSTOMER or OWNER")
	}
	if s.adminEmail != "" && email == s.adminEmail {
		role = models.RoleAdmin
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	user := models.User{
		Role:         role,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", apperrors.Internal(err)
	}

	tok, err := s.tokens.Issue(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return &user, tok, nil
}

// Login verifies credentials and returns the account with a fresh
// token. Unknown email, wrong password, and role mismatch all fail with
// the same generic error so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string, role models.Role) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.InvalidCredentials()
		}
		return nil, "", apperrors.Internal(err)
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, "", apperrors.InvalidCredentials()
	}
	if role != "" && user.Role != role {
		return nil, "", apperrors.InvalidCredentials()
	}

	tok, err := s.tokens.Issue(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return &user, tok, nil
}

// GetAccount loads one account by id.
func (s *AuthService) GetAccount(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}
