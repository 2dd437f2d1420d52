package config

import (
	"os"
	"strconv"

	"betvida/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// HistoryScanLimit caps how many recent bets the achievement sweep
	// inspects. Streak and watch-time badges that would need older bets
	// become unattainable past this window; that is a deliberate bound.
	HistoryScanLimit int

	// Leaderboard
	LeaderboardSize     int
	LeaderboardCacheTTL int // seconds, 0 disables the Redis cache

	// Rate limits
	APIRateLimit  int
	APIRateWindow int // seconds
	BetRateLimit  int
	BetRateWindow int // seconds
}

// Load reads configuration from the environment (and .env, if present).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:             port,
		DatabaseURL:         dbURL,
		JWTSecret:           jwtSecret,
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             redisDB,
		HistoryScanLimit:    envInt("HISTORY_SCAN_LIMIT", 100),
		LeaderboardSize:     envInt("LEADERBOARD_SIZE", 10),
		LeaderboardCacheTTL: envInt("LEADERBOARD_CACHE_TTL", 30),
		APIRateLimit:        envInt("API_RATE_LIMIT", 60),
		APIRateWindow:       envInt("API_RATE_WINDOW_SECONDS", 60),
		BetRateLimit:        envInt("BET_RATE_LIMIT", 30),
		BetRateWindow:       envInt("BET_RATE_WINDOW_SECONDS", 60),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
