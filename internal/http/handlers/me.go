package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me returns the caller's profile with aggregates and earned achievements.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserRepo.GetByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	achievements, err := h.UserRepo.AchievementIDs(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load achievements"})
		return
	}
	if achievements == nil {
		achievements = []string{}
	}
	user.Achievements = achievements

	c.JSON(http.StatusOK, user)
}
