package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the top users by cumulative minutes won.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	n := h.cfg.LeaderboardSize
	if v := c.Query("n"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			n = parsed
		}
	}

	entries, err := h.Leaderboard.TopN(c.Request.Context(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
