package handlers

import (
	"net/http"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/middleware"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/services"

	"github.com/gin-gonic/gin"
)

type MessHandler struct {
	svc *services.MessService
}

func NewMessHandler(svc *services.MessService) *MessHandler {
	return &MessHandler{svc: svc}
}

type CreateMessRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Area        string `json:"area" binding:"required,min=3,max=100"`
	Phone       string `json:"phone" binding:"required,inphone"`
	Address     string `json:"address" binding:"required,min=10,max=300"`
	Description string `json:"description" binding:"required,min=10,max=500"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateMessRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=100"`
	Area        *string `json:"area" binding:"omitempty,min=3,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,inphone"`
	Address     *string `json:"address" binding:"omitempty,min=10,max=300"`
	Description *string `json:"description" binding:"omitempty,min=10,max=500"`
	IsActive    *bool   `json:"is_active"`
}

func (h *MessHandler) Create(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	var req CreateMessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	mess, err := h.svc.Create(identity.AccountID, services.CreateMessInput{
		Name:        req.Name,
		Area:        req.Area,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "mess": mess})
}

func (h *MessHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	mess, err := h.svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mess": mess})
}

// List answers mess searches. An empty result is a valid 200 with an
// empty array.
func (h *MessHandler) List(c *gin.Context) {
	filters := services.MessFilters{
		Area:       c.Query("area"),
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	}
	messes, err := h.svc.List(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(messes), "messes": messes})
}

func (h *MessHandler) Mine(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	messes, err := h.svc.ListByOwner(identity.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(messes), "messes": messes})
}

func (h *MessHandler) Update(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateMessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	mess, err := h.svc.Update(id, identity.AccountID, services.MessUpdate{
		Name:        req.Name,
		Area:        req.Area,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mess": mess})
}

func (h *MessHandler) Delete(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id, identity.AccountID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "mess deleted"})
}
