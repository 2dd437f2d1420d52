package handlers

import (
	"net/http"

	"betvida/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the identity-provider profile the frontend forwards
// after a successful provider sign-in.
type LoginRequest struct {
	ProviderUID string `json:"provider_uid" binding:"required,max=128"`
	DisplayName string `json:"display_name" binding:"required,max=128"`
	PhotoURL    string `json:"photo_url" binding:"omitempty,max=512"`
}

// Login creates the user profile on first sign-in, refreshes last_login
// afterwards, and issues a session token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserRepo.Upsert(ctx, req.ProviderUID, req.DisplayName, req.PhotoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
