package handlers

import (
	"net/http"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/middleware"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type CreateProfileRequest struct {
	Phone   string `json:"phone" binding:"required,inphone"`
	Address string `json:"address" binding:"required,min=10,max=300"`
}

type UpdateProfileRequest struct {
	Phone   *string `json:"phone" binding:"omitempty,inphone"`
	Address *string `json:"address" binding:"omitempty,min=10,max=300"`
}

func (r UpdateProfileRequest) toUpdate() services.ProfileUpdate {
	return services.ProfileUpdate{Phone: r.Phone, Address: r.Address}
}

func (h *ProfileHandler) CreateCustomerProfile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	profile, err := h.svc.CreateCustomerProfile(identity.AccountID, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "profile": profile})
}

func (h *ProfileHandler) GetCustomerProfile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	profile, err := h.svc.GetCustomerProfile(identity.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

func (h *ProfileHandler) UpdateCustomerProfile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	profile, err := h.svc.UpdateCustomerProfile(identity.AccountID, req.toUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

func (h *ProfileHandler) CreateOwnerProfile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	profile, err := h.svc.CreateOwnerProfile(identity.AccountID, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "profile": profile})
}

func (h *ProfileHandler) GetOwnerProfile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	profile, err := h.svc.GetOwnerProfile(identity.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

func (h *ProfileHandler) UpdateOwnerProfile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	profile, err := h.svc.UpdateOwnerProfile(identity.AccountID, req.toUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}
