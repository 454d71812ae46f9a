package handlers

import (
	"net/http"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc *services.UserService
}

func NewAdminHandler(svc *services.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListUsers returns all accounts, optionally filtered by ?role=.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(models.Role(c.Query("role")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "users": users})
}

func (h *AdminHandler) ListCustomers(c *gin.Context) {
	profiles, err := h.svc.ListCustomerProfiles()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(profiles), "customers": profiles})
}

func (h *AdminHandler) ListOwners(c *gin.Context) {
	profiles, err := h.svc.ListOwnerProfiles()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(profiles), "owners": profiles})
}

func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.svc.Statistics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "statistics": stats})
}
