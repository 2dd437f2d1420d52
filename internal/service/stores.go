package service

import (
	"context"

	"betvida/internal/domain"
)

// The services talk to storage through these narrow interfaces. The pgx
// repositories satisfy them in production; tests use in-memory fakes. Each
// mutating method is a single atomic statement so the services never need
// read-modify-write sequences.

type BetStore interface {
	Create(ctx context.Context, b *domain.Bet) error
	GetByID(ctx context.Context, id int64) (*domain.Bet, error)
	Resolve(ctx context.Context, id int64, result domain.BetResult, videoID *string) (*domain.Bet, error)
	Complete(ctx context.Context, id int64) (*domain.Bet, error)
	RecentByUser(ctx context.Context, userID int64, limit int) ([]*domain.Bet, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ApplyOutcome(ctx context.Context, userID int64, wonMinutes, lostMinutes int64) error
	AchievementIDs(ctx context.Context, userID int64) ([]string, error)
	GrantAchievement(ctx context.Context, userID int64, achievementID string) (bool, error)
}

type GameStore interface {
	GetByID(ctx context.Context, id string) (*domain.Game, error)
}

type VideoStore interface {
	WithMinDuration(ctx context.Context, seconds int) ([]*domain.Video, error)
	Any(ctx context.Context) (*domain.Video, error)
}

type AchievementStore interface {
	List(ctx context.Context) ([]*domain.Achievement, error)
}

type LeaderboardStore interface {
	TopByMinutesWon(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
}
