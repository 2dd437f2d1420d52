package handlers

import (
	"errors"
	"net/http"

	"betvida/internal/repository"

	"github.com/gin-gonic/gin"
)

// Games lists the game catalog.
func (h *Handler) Games(c *gin.Context) {
	games, err := h.GameRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load games"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

// Game returns one catalog entry.
func (h *Handler) Game(c *gin.Context) {
	game, err := h.GameRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load game"})
		return
	}
	c.JSON(http.StatusOK, game)
}
