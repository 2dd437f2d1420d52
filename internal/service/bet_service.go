package service

import (
	"context"
	"fmt"

	"betvida/internal/domain"
	"betvida/internal/logger"
)

// BetService is the ledger for wagers: it creates pending bets, resolves
// them exactly once and keeps the user aggregates in step. The bet row is
// the source of truth for each wager; users.minutes_won / minutes_lost /
// total_bets are the source of truth for the leaderboard and are only ever
// incremented, never recomputed from the ledger.
type BetService struct {
	bets     BetStore
	users    UserStore
	games    GameStore
	resolver OutcomeResolver
	assigner *VideoAssigner
}

func NewBetService(bets BetStore, users UserStore, games GameStore, resolver OutcomeResolver, assigner *VideoAssigner) *BetService {
	return &BetService{
		bets:     bets,
		users:    users,
		games:    games,
		resolver: resolver,
		assigner: assigner,
	}
}

// PlaceBet records a pending wager of minutes on a game. The caller must
// be the bet's owner; callerID therefore doubles as the bet's user id.
func (s *BetService) PlaceBet(ctx context.Context, callerID int64, gameID string, minutes int) (*domain.Bet, error) {
	if minutes < 1 {
		return nil, ErrInvalidWager
	}

	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, err
	}

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.AllowsWager(minutes) {
		return nil, fmt.Errorf("%w: %s accepts %d-%d minutes", ErrWagerOutOfRange, game.ID, game.MinBet, game.MaxBet)
	}

	bet := &domain.Bet{
		UserID:  callerID,
		GameID:  gameID,
		Minutes: minutes,
	}
	if err := s.bets.Create(ctx, bet); err != nil {
		return nil, err
	}
	return bet, nil
}

// ResolveResult is the committed outcome of one bet.
type ResolveResult struct {
	Bet   *domain.Bet
	Won   bool
	Video *domain.Video // set only on a loss
}

// ResolveBet settles a pending bet: draws the outcome against the game's
// configured win probability, assigns a penalty video on a loss, commits
// the transition and applies the user aggregates.
//
// The transition itself is one conditional write guarded on the pending
// state, so a retried or concurrent resolve fails instead of crediting
// twice. If the aggregate update fails after the outcome committed, the
// result is returned together with ErrStatsUpdate: the outcome is final
// and only the stats step should be retried.
func (s *BetService) ResolveBet(ctx context.Context, callerID, betID int64) (*ResolveResult, error) {
	bet, err := s.bets.GetByID(ctx, betID)
	if err != nil {
		return nil, err
	}
	if bet.UserID != callerID {
		return nil, ErrNotBetOwner
	}

	game, err := s.games.GetByID(ctx, bet.GameID)
	if err != nil {
		return nil, err
	}

	won := s.resolver.Resolve(game.WinChance)

	var video *domain.Video
	result := domain.BetResultWin
	var videoID *string
	if !won {
		video, err = s.assigner.Assign(ctx, bet.Minutes)
		if err != nil {
			return nil, err
		}
		result = domain.BetResultLose
		videoID = &video.ID
	}

	resolved, err := s.bets.Resolve(ctx, betID, result, videoID)
	if err != nil {
		return nil, err
	}

	res := &ResolveResult{Bet: resolved, Won: won, Video: video}

	wonMinutes, lostMinutes := int64(bet.Minutes), int64(0)
	if !won {
		wonMinutes, lostMinutes = 0, int64(bet.Minutes)
	}
	if err := s.users.ApplyOutcome(ctx, bet.UserID, wonMinutes, lostMinutes); err != nil {
		logger.Error("stats update failed after resolution",
			"bet_id", betID, "user_id", bet.UserID, "error", err)
		return res, fmt.Errorf("%w: %v", ErrStatsUpdate, err)
	}

	return res, nil
}

// CompleteBet marks a lost bet's penalty video as watched. The bet is
// immutable afterwards.
func (s *BetService) CompleteBet(ctx context.Context, callerID, betID int64) (*domain.Bet, error) {
	bet, err := s.bets.GetByID(ctx, betID)
	if err != nil {
		return nil, err
	}
	if bet.UserID != callerID {
		return nil, ErrNotBetOwner
	}

	return s.bets.Complete(ctx, betID)
}
