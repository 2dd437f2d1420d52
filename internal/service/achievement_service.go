package service

import (
	"context"

	"betvida/internal/domain"
)

// AchievementService re-scans a user's recent bet history against the
// badge catalog and grants whatever is newly earned. Evaluation is
// idempotent: the grant write deduplicates, and running the sweep twice
// with no new bets changes nothing.
type AchievementService struct {
	users        UserStore
	bets         BetStore
	achievements AchievementStore

	// historyLimit bounds the scan to the most recent N bets. Badges
	// that would need to inspect older bets become unattainable once
	// history outgrows the window; that is a documented design bound,
	// not an accident.
	historyLimit int
}

func NewAchievementService(users UserStore, bets BetStore, achievements AchievementStore, historyLimit int) *AchievementService {
	if historyLimit <= 0 {
		historyLimit = 100
	}
	return &AchievementService{
		users:        users,
		bets:         bets,
		achievements: achievements,
		historyLimit: historyLimit,
	}
}

// Evaluate runs the sweep for one user and returns the ids granted by this
// run, in catalog order.
func (s *AchievementService) Evaluate(ctx context.Context, userID int64) ([]string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	held, err := s.users.AchievementIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	heldSet := make(map[string]bool, len(held))
	for _, id := range held {
		heldSet[id] = true
	}

	catalog, err := s.achievements.List(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.bets.RecentByUser(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, err
	}

	var granted []string
	for _, a := range catalog {
		if heldSet[a.ID] {
			continue
		}
		if !Earned(a, user, history) {
			continue
		}
		isNew, err := s.users.GrantAchievement(ctx, userID, a.ID)
		if err != nil {
			return granted, err
		}
		if isNew {
			granted = append(granted, a.ID)
		}
	}
	return granted, nil
}

// Earned evaluates one badge rule against the user's aggregates and the
// scanned history window. History arrives newest first, as the ledger
// returns it.
func Earned(a *domain.Achievement, user *domain.User, history []*domain.Bet) bool {
	switch a.RuleType {
	case domain.RuleFirstBet:
		return len(history) > 0
	case domain.RuleMinutesWagered:
		return user.MinutesWagered() >= a.Threshold
	case domain.RuleConsecutiveLosses:
		return int64(MaxLossStreak(history)) >= a.Threshold
	case domain.RuleVideoWatched:
		return WatchedMinutes(history) >= a.Threshold
	}
	return false
}

// MaxLossStreak computes the longest contiguous run of losses within the
// window, scanning chronologically (oldest to newest). Any non-loss
// outcome, including a still-pending bet, resets the running streak.
func MaxLossStreak(newestFirst []*domain.Bet) int {
	streak, best := 0, 0
	for i := len(newestFirst) - 1; i >= 0; i-- {
		if newestFirst[i].Lost() {
			streak++
			if streak > best {
				best = streak
			}
		} else {
			streak = 0
		}
	}
	return best
}

// WatchedMinutes sums the wagered minutes of lost bets whose penalty video
// was watched to the end.
func WatchedMinutes(history []*domain.Bet) int64 {
	var total int64
	for _, b := range history {
		if b.Lost() && b.Completed {
			total += int64(b.Minutes)
		}
	}
	return total
}
