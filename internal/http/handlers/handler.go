package handlers

import (
	"time"

	"betvida/internal/repository"
	"betvida/internal/service"
	"betvida/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
)

// HandlerConfig carries the tunables the handlers need.
type HandlerConfig struct {
	HistoryScanLimit    int
	LeaderboardSize     int
	LeaderboardCacheTTL int // seconds
}

type Handler struct {
	DB              *pgxpool.Pool
	UserRepo        *repository.UserRepository
	BetRepo         *repository.BetRepository
	GameRepo        *repository.GameRepository
	AchievementRepo *repository.AchievementRepository

	Bets         *service.BetService
	Achievements *service.AchievementService
	Leaderboard  *service.LeaderboardService

	Feed *ws.Hub

	cfg HandlerConfig
}

func NewHandler(db *pgxpool.Pool, cache *redis.Client, cfg HandlerConfig) *Handler {
	if cfg.HistoryScanLimit <= 0 {
		cfg.HistoryScanLimit = 100
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = 10
	}

	userRepo := repository.NewUserRepository(db)
	betRepo := repository.NewBetRepository(db)
	gameRepo := repository.NewGameRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	assigner := service.NewVideoAssigner(videoRepo)
	resolver := service.NewRandResolver(nil)

	return &Handler{
		DB:              db,
		UserRepo:        userRepo,
		BetRepo:         betRepo,
		GameRepo:        gameRepo,
		AchievementRepo: achievementRepo,
		Bets:            service.NewBetService(betRepo, userRepo, gameRepo, resolver, assigner),
		Achievements: service.NewAchievementService(
			userRepo, betRepo, achievementRepo, cfg.HistoryScanLimit),
		Leaderboard: service.NewLeaderboardService(
			userRepo, cache, time.Duration(cfg.LeaderboardCacheTTL)*time.Second),
		Feed: ws.NewHub(),
		cfg:  cfg,
	}
}

// getUserID pulls the authenticated caller id out of the gin context.
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
