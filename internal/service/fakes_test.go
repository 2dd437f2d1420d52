package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"betvida/internal/domain"
	"betvida/internal/repository"
)

// fakeStore is an in-memory stand-in for the pgx repositories. It mirrors
// their conditional-write semantics: Resolve and Complete only fire from
// the right state, GrantAchievement deduplicates, ApplyOutcome increments.
type fakeStore struct {
	mu sync.Mutex

	nextBetID int64
	bets      map[int64]*domain.Bet

	users  map[int64]*domain.User
	games  map[string]*domain.Game
	videos []*domain.Video

	achievements []*domain.Achievement
	grants       map[int64][]string

	statsErr error // forced ApplyOutcome failure
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bets:   make(map[int64]*domain.Bet),
		users:  make(map[int64]*domain.User),
		games:  make(map[string]*domain.Game),
		grants: make(map[int64][]string),
	}
}

// --- BetStore ---

func (f *fakeStore) Create(ctx context.Context, b *domain.Bet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextBetID++
	b.ID = f.nextBetID
	b.CreatedAt = time.Now()
	cp := *b
	f.bets[b.ID] = &cp
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Bet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bets[id]
	if !ok {
		return nil, repository.ErrBetNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeStore) Resolve(ctx context.Context, id int64, result domain.BetResult, videoID *string) (*domain.Bet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bets[id]
	if !ok {
		return nil, repository.ErrBetNotFound
	}
	if b.Result != nil {
		return nil, repository.ErrBetNotPending
	}
	now := time.Now()
	b.Result = &result
	b.VideoID = videoID
	b.ResolvedAt = &now
	cp := *b
	return &cp, nil
}

func (f *fakeStore) Complete(ctx context.Context, id int64) (*domain.Bet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bets[id]
	if !ok {
		return nil, repository.ErrBetNotFound
	}
	if !b.Lost() || b.Completed {
		return nil, repository.ErrBetNotWatchable
	}
	now := time.Now()
	b.Completed = true
	b.CompletedAt = &now
	cp := *b
	return &cp, nil
}

func (f *fakeStore) RecentByUser(ctx context.Context, userID int64, limit int) ([]*domain.Bet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Bet
	for _, b := range f.bets {
		if b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- UserStore ---

func (f *fakeStore) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) ApplyOutcome(ctx context.Context, userID int64, wonMinutes, lostMinutes int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return f.statsErr
	}
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.MinutesWon += wonMinutes
	u.MinutesLost += lostMinutes
	u.TotalBets++
	return nil
}

func (f *fakeStore) AchievementIDs(ctx context.Context, userID int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.grants[userID]...), nil
}

func (f *fakeStore) GrantAchievement(ctx context.Context, userID int64, achievementID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.grants[userID] {
		if id == achievementID {
			return false, nil
		}
	}
	f.grants[userID] = append(f.grants[userID], achievementID)
	return true, nil
}

// --- GameStore / VideoStore / AchievementStore ---

func (f *fakeStore) GetGameByID(ctx context.Context, id string) (*domain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.games[id]
	if !ok {
		return nil, repository.ErrGameNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeStore) WithMinDuration(ctx context.Context, seconds int) ([]*domain.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Video
	for _, v := range f.videos {
		if v.DurationSeconds >= seconds {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) Any(ctx context.Context) (*domain.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.videos) == 0 {
		return nil, repository.ErrVideoNotFound
	}
	cp := *f.videos[0]
	return &cp, nil
}

func (f *fakeStore) List(ctx context.Context) ([]*domain.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Achievement(nil), f.achievements...), nil
}

// Method-set adapters so one fakeStore serves every store interface even
// though UserStore and GameStore both declare GetByID.

type fakeUsers struct{ *fakeStore }

func (f fakeUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.GetUserByID(ctx, id)
}

type fakeGames struct{ *fakeStore }

func (f fakeGames) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	return f.GetGameByID(ctx, id)
}

// fixedResolver always returns the configured outcome.
type fixedResolver bool

func (r fixedResolver) Resolve(winChance float64) bool { return bool(r) }

var errStatsDown = errors.New("stats backend down")
