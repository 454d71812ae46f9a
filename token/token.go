// Package token issues and verifies the signed bearer tokens carried by
// every authenticated request. Tokens are stateless: there is no
// revocation list, and logout only clears the client cookie.
package token

import (
	"time"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved caller attached to request context on
// successful verification.
type Identity struct {
	AccountID uint
	Name      string
	Role      models.Role
}

type Claims struct {
	AccountID uint        `json:"account_id"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret   []byte
	lifetime time.Duration
}

func NewService(secret string, lifetime time.Duration) *Service {
	return &Service{secret: []byte(secret), lifetime: lifetime}
}

// Issue signs a token embedding the account's identity and role.
func (s *Service) Issue(accountID uint, name string, role models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		Name:      name,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify parses and validates a token string. Any failure (bad
// signature, malformed payload, expiry) surfaces as Unauthenticated.
func (s *Service) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Unauthenticated("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, apperrors.Unauthenticated("invalid or expired token")
	}
	return &Identity{AccountID: claims.AccountID, Name: claims.Name, Role: claims.Role}, nil
}
