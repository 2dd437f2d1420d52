package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"betvida/internal/domain"
	"betvida/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// LeaderboardService ranks users by cumulative minutes won. The ranking is
// a pure read over the user aggregates; ties break on user id so pages are
// stable. Results are cached briefly in Redis when a client is provided,
// and the cache fails open.
type LeaderboardService struct {
	store LeaderboardStore
	cache *redis.Client
	ttl   time.Duration
}

func NewLeaderboardService(store LeaderboardStore, cache *redis.Client, ttl time.Duration) *LeaderboardService {
	return &LeaderboardService{store: store, cache: cache, ttl: ttl}
}

// TopN returns the n highest-ranked users. An empty system yields an empty
// list, not an error.
func (s *LeaderboardService) TopN(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n <= 0 {
		n = 10
	}

	key := "leaderboard:top:" + strconv.Itoa(n)
	if s.cached() {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var entries []domain.LeaderboardEntry
			if json.Unmarshal([]byte(raw), &entries) == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.store.TopByMinutesWon(ctx, n)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}

	if s.cached() {
		if raw, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				logger.Debug("leaderboard cache write failed", "error", err)
			}
		}
	}

	return entries, nil
}

func (s *LeaderboardService) cached() bool {
	return s.cache != nil && s.ttl > 0
}
