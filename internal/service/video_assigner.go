package service

import (
	"context"
	"errors"
	"math/rand"

	"betvida/internal/domain"
	"betvida/internal/repository"
)

// VideoAssigner picks the penalty video for a lost bet: a uniform random
// choice among every video at least as long as the wagered minutes, with
// an arbitrary catalog video as fallback when none is long enough.
type VideoAssigner struct {
	videos VideoStore
	pick   func(n int) int
}

func NewVideoAssigner(videos VideoStore) *VideoAssigner {
	return &VideoAssigner{videos: videos, pick: rand.Intn}
}

// Assign selects the penalty video for a loss of the given wagered
// minutes. An empty catalog returns ErrNoVideos; the caller must treat
// that as a failed resolution, not a skipped penalty.
func (a *VideoAssigner) Assign(ctx context.Context, wageredMinutes int) (*domain.Video, error) {
	needed := wageredMinutes * 60

	candidates, err := a.videos.WithMinDuration(ctx, needed)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		return candidates[a.pick(len(candidates))], nil
	}

	// Nothing long enough: any video serves as the default penalty.
	v, err := a.videos.Any(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, ErrNoVideos
		}
		return nil, err
	}
	return v, nil
}
