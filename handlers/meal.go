package handlers

import (
	"net/http"
	"strconv"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/middleware"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/services"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	svc *services.MealService
}

func NewMealHandler(svc *services.MealService) *MealHandler {
	return &MealHandler{svc: svc}
}

type CreateMealRequest struct {
	MessID      uint            `json:"mess_id" binding:"required"`
	Name        string          `json:"name" binding:"required,min=3,max=100"`
	MealType    models.MealType `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	IsVeg       bool            `json:"is_veg"`
	Description string          `json:"description" binding:"required,min=10,max=500"`
	Price       float64         `json:"price" binding:"required,min=1"`
	IsAvailable *bool           `json:"is_available"`
}

type UpdateMealRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=3,max=100"`
	MealType    *models.MealType `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	IsVeg       *bool            `json:"is_veg"`
	Description *string          `json:"description" binding:"omitempty,min=10,max=500"`
	Price       *float64         `json:"price" binding:"omitempty,min=1"`
	IsAvailable *bool            `json:"is_available"`
}

func (h *MealHandler) Create(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	meal, err := h.svc.Create(identity.AccountID, services.CreateMealInput{
		MessID:      req.MessID,
		Name:        req.Name,
		MealType:    req.MealType,
		IsVeg:       req.IsVeg,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "meal": meal})
}

func (h *MealHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	meal, err := h.svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "meal": meal})
}

func (h *MealHandler) List(c *gin.Context) {
	filters := services.MealFilters{
		MealType: models.MealType(c.Query("meal_type")),
	}
	if raw := c.Query("mess_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filters.MessID = uint(id)
		}
	}
	if raw := c.Query("is_veg"); raw != "" {
		veg := raw == "true"
		filters.IsVeg = &veg
	}
	if raw := c.Query("available"); raw != "" {
		available := raw == "true"
		filters.IsAvailable = &available
	}
	meals, err := h.svc.List(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(meals), "meals": meals})
}

func (h *MealHandler) Update(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	meal, err := h.svc.Update(id, identity.AccountID, services.MealUpdate{
		Name:        req.Name,
		MealType:    req.MealType,
		IsVeg:       req.IsVeg,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "meal": meal})
}

func (h *MealHandler) Delete(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id, identity.AccountID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "meal deleted"})
}
