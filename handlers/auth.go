package handlers

import (
	"net/http"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/middleware"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc          *services.AuthService
	cookieMaxAge int
}

func NewAuthHandler(svc *services.AuthService, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{svc: svc, cookieMaxAge: cookieMaxAge}
}

type RegisterRequest struct {
	Name     string      `json:"name" binding:"required,min=3,max=30"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role" binding:"required,oneof=CUSTOMER OWNER"`
}

type LoginRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"omitempty,oneof=CUSTOMER OWNER ADMIN"`
}

func accountSummary(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// Register creates an account, sets the bearer cookie and returns the
// account summary with the token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, tok, err := h.svc.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, tok)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    accountSummary(user),
		"token":   tok,
	})
}

// Login authenticates and hands out a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, tok, err := h.svc.Login(req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, tok)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    accountSummary(user),
		"token":   tok,
	})
}

// Logout clears the cookie. The token itself stays valid until expiry;
// there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", secureCookies(), true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "logged out successfully",
	})
}

// Me returns the authenticated caller's account.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	user, err := h.svc.GetAccount(identity.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, tok string) {
	c.SetCookie(middleware.CookieName, tok, h.cookieMaxAge, "/", "", secureCookies(), true)
}

// secureCookies marks the token cookie Secure in release mode, where
// the API is expected to sit behind HTTPS.
func secureCookies() bool {
	return gin.Mode() == gin.ReleaseMode
}
