package handlers

import (
	"net/http"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/middleware"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=3,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	contact, err := h.svc.Create(identity.AccountID, req.Name, req.Email, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "contact": contact})
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(contacts), "contacts": contacts})
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	contact, err := h.svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contact": contact})
}

func (h *ContactHandler) GroupedByUser(c *gin.Context) {
	groups, err := h.svc.GroupByUser()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(groups), "groups": groups})
}

func (h *ContactHandler) Statistics(c *gin.Context) {
	stats, err := h.svc.Statistics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "statistics": stats})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "contact message deleted"})
}

func (h *ContactHandler) DeleteAll(c *gin.Context) {
	deleted, err := h.svc.DeleteAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted_count": deleted})
}
