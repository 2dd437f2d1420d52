package http

import (
	"time"

	"betvida/internal/config"
	"betvida/internal/http/handlers"
	"betvida/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cache *redis.Client, version string, cfg *config.Config) {
	h := handlers.NewHandler(db, cache, handlers.HandlerConfig{
		HistoryScanLimit:    cfg.HistoryScanLimit,
		LeaderboardSize:     cfg.LeaderboardSize,
		LeaderboardCacheTTL: cfg.LeaderboardCacheTTL,
	})
	healthHandler := handlers.NewHealthHandler(db, version)

	apiRateWindow := time.Duration(cfg.APIRateWindow) * time.Second
	betRateWindow := time.Duration(cfg.BetRateWindow) * time.Second

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Live resolved-bet feed
	r.GET("/ws/feed", func(c *gin.Context) {
		h.Feed.Serve(c.Writer, c.Request)
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, cfg, betRateWindow)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config, betRateWindow time.Duration) {
	// Auth: the in-process limiter keeps login throttled even without Redis
	api.POST("/auth/login", middleware.SimpleRateLimit(10, time.Minute), h.Login)

	// Profile
	api.GET("/me", middleware.JWT(), h.Me)
	api.GET("/me/bets", middleware.JWT(), h.MyBets)
	api.GET("/me/bets/pending", middleware.JWT(), h.MyPendingBets)
	api.GET("/me/achievements", middleware.JWT(), h.MyAchievements)
	api.POST("/me/achievements/evaluate", middleware.JWT(), h.EvaluateAchievements)

	// Bet lifecycle; placement is limited per user, not per IP
	betRL := middleware.BetRateLimit(cfg.BetRateLimit, betRateWindow)
	api.POST("/bets", middleware.JWT(), betRL, h.PlaceBet)
	api.POST("/bets/:id/resolve", middleware.JWT(), h.ResolveBet)
	api.POST("/bets/:id/complete", middleware.JWT(), h.CompleteBet)

	// Reference catalogs
	api.GET("/games", h.Games)
	api.GET("/games/:id", h.Game)
	api.GET("/achievements", h.ListAchievements)

	// Leaderboard
	api.GET("/leaderboard", h.GetLeaderboard)
}
