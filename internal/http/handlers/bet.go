package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"betvida/internal/domain"
	"betvida/internal/http/middleware"
	"betvida/internal/logger"
	"betvida/internal/repository"
	"betvida/internal/service"
	"betvida/internal/ws"

	"github.com/gin-gonic/gin"
)

// PlaceBetRequest wagers minutes on a game.
type PlaceBetRequest struct {
	GameID  string `json:"game_id" binding:"required"`
	Minutes int    `json:"minutes" binding:"required,min=1"`
}

// PlaceBet creates a pending bet for the caller.
func (h *Handler) PlaceBet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	bet, err := h.Bets.PlaceBet(c.Request.Context(), userID, req.GameID, req.Minutes)
	if err != nil {
		respondBetError(c, err)
		return
	}

	middleware.BetsPlaced.WithLabelValues(bet.GameID).Inc()

	c.JSON(http.StatusCreated, gin.H{
		"bet_id": bet.ID,
		"status": "pending",
		"bet":    bet,
	})
}

// ResolveBet settles a pending bet and reports the outcome and, on a
// loss, the assigned penalty video.
func (h *Handler) ResolveBet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	betID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bet id"})
		return
	}

	res, err := h.Bets.ResolveBet(c.Request.Context(), userID, betID)
	if err != nil && !errors.Is(err, service.ErrStatsUpdate) {
		respondBetError(c, err)
		return
	}

	middleware.BetsResolved.WithLabelValues(res.Bet.GameID, string(*res.Bet.Result)).Inc()
	h.broadcastResolved(res)

	body := gin.H{
		"bet_id":  res.Bet.ID,
		"outcome": res.Bet.Result,
	}
	if res.Video != nil {
		body["video"] = res.Video
	}
	if err != nil {
		// The outcome committed but the aggregates did not; surface it
		// so the caller can retry just the stats step.
		logger.Warn("resolution committed with stale user stats", "bet_id", betID, "error", err)
		body["warning"] = "user statistics update failed; retry later"
		c.JSON(http.StatusOK, body)
		return
	}

	c.JSON(http.StatusOK, body)
}

// CompleteBet acknowledges that the penalty video was watched.
func (h *Handler) CompleteBet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	betID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bet id"})
		return
	}

	bet, err := h.Bets.CompleteBet(c.Request.Context(), userID, betID)
	if err != nil {
		respondBetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bet_id": bet.ID, "completed": true})
}

// MyBets returns the caller's most recent bets.
func (h *Handler) MyBets(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= h.cfg.HistoryScanLimit {
			limit = n
		}
	}

	bets, err := h.BetRepo.RecentByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bets"})
		return
	}
	if bets == nil {
		bets = []*domain.Bet{}
	}

	c.JSON(http.StatusOK, gin.H{"bets": bets})
}

// MyPendingBets returns lost bets whose penalty video is still unwatched.
func (h *Handler) MyPendingBets(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	bets, err := h.BetRepo.PendingVideosByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pending bets"})
		return
	}
	if bets == nil {
		bets = []*domain.Bet{}
	}

	c.JSON(http.StatusOK, gin.H{"bets": bets})
}

func (h *Handler) broadcastResolved(res *service.ResolveResult) {
	displayName := ""
	if u, err := h.UserRepo.GetByID(context.Background(), res.Bet.UserID); err == nil {
		displayName = u.DisplayName
	}
	h.Feed.Broadcast(ws.NewBetEvent(res.Bet, displayName))
}

// respondBetError maps the ledger error taxonomy onto HTTP statuses:
// validation 400, ownership 403, missing entities 404, state-machine
// violations 409, empty video catalog 503.
func respondBetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWager),
		errors.Is(err, service.ErrWagerOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotBetOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrBetNotFound),
		errors.Is(err, repository.ErrGameNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrBetNotPending),
		errors.Is(err, repository.ErrBetNotWatchable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoVideos):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.Error("bet operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
