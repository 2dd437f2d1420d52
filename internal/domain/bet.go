package domain

import "time"

// BetResult - outcome of a resolved bet
type BetResult string

const (
	BetResultWin  BetResult = "win"
	BetResultLose BetResult = "lose"
)

// Bet is a single wager of minutes on a game.
//
// Lifecycle: created with Result nil (pending), resolved exactly once to
// win or lose, and, on lose, marked completed when the penalty video has
// been watched. No further transitions are valid after completion.
type Bet struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	GameID      string     `db:"game_id" json:"game_id"`
	Minutes     int        `db:"minutes" json:"minutes"`
	Result      *BetResult `db:"result" json:"result,omitempty"`
	VideoID     *string    `db:"video_id" json:"video_id,omitempty"`
	Completed   bool       `db:"completed" json:"completed"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt  *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// Pending reports whether the bet has not been resolved yet.
func (b *Bet) Pending() bool {
	return b.Result == nil
}

// Lost reports whether the bet was resolved as a loss.
func (b *Bet) Lost() bool {
	return b.Result != nil && *b.Result == BetResultLose
}
