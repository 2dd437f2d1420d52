package service

import "errors"

var (
	// Validation
	ErrInvalidWager    = errors.New("wager must be a positive number of minutes")
	ErrWagerOutOfRange = errors.New("wager outside the game's limits")

	// Auth
	ErrNotBetOwner = errors.New("caller does not own this bet")

	// Configuration: a lost bet cannot be finalized without a penalty
	// video. An empty catalog is escalated, never treated as "no penalty".
	ErrNoVideos = errors.New("no penalty videos available")

	// ErrStatsUpdate wraps a failure to apply user aggregates after the
	// bet outcome itself committed. The outcome stands; only the stats
	// step needs a compensating retry.
	ErrStatsUpdate = errors.New("bet resolved but user stats update failed")
)
