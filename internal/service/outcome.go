package service

import "math/rand"

// OutcomeResolver decides win or lose for one wager. Implementations must
// be stateless: the outcome depends only on the game's win probability and
// the random source.
type OutcomeResolver interface {
	Resolve(winChance float64) bool
}

// RandResolver draws one uniform value in [0,1) and wins when it falls
// below the game's configured probability. Each game's win_chance is
// honored; there is no global house threshold.
type RandResolver struct {
	rng *rand.Rand
}

// NewRandResolver returns a resolver backed by src, or by the shared
// default source when src is nil.
func NewRandResolver(src rand.Source) *RandResolver {
	if src == nil {
		return &RandResolver{}
	}
	return &RandResolver{rng: rand.New(src)}
}

func (r *RandResolver) Resolve(winChance float64) bool {
	if r.rng != nil {
		return r.rng.Float64() < winChance
	}
	return rand.Float64() < winChance
}
