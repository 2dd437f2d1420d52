package handlers

import (
	"net/http"

	"betvida/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ListAchievements lists the badge catalog.
func (h *Handler) ListAchievements(c *gin.Context) {
	list, err := h.AchievementRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load achievements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": list})
}

// EvaluateAchievements runs the badge sweep for the caller and reports
// anything newly earned.
func (h *Handler) EvaluateAchievements(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	granted, err := h.Achievements.Evaluate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
		return
	}
	if granted == nil {
		granted = []string{}
	}

	middleware.AchievementsGranted.Add(float64(len(granted)))

	c.JSON(http.StatusOK, gin.H{"granted": granted})
}

// MyAchievements returns the ids the caller has earned.
func (h *Handler) MyAchievements(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ids, err := h.UserRepo.AchievementIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load achievements"})
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"achievements": ids})
}
