// Package handlers contains the thin HTTP adapters: bind input, resolve
// the caller identity, call a domain service, render the envelope.
package handlers

import (
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/config"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/services"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/token"

	"gorm.io/gorm"
)

// Set bundles all handlers wired to their services.
type Set struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Mess    *MessHandler
	Meal    *MealHandler
	Order   *OrderHandler
	Review  *ReviewHandler
	Contact *ContactHandler
	Admin   *AdminHandler
}

func New(db *gorm.DB, tokens *token.Service, cfg config.Config) *Set {
	messSvc := services.NewMessService(db)
	return &Set{
		Auth:    NewAuthHandler(services.NewAuthService(db, tokens, cfg.InitialAdminEmail), int(cfg.JWTLifetime.Seconds())),
		Profile: NewProfileHandler(services.NewProfileService(db)),
		Mess:    NewMessHandler(messSvc),
		Meal:    NewMealHandler(services.NewMealService(db)),
		Order:   NewOrderHandler(services.NewOrderService(db)),
		Review:  NewReviewHandler(services.NewReviewService(db)),
		Contact: NewContactHandler(services.NewContactService(db)),
		Admin:   NewAdminHandler(services.NewUserService(db)),
	}
}
