package domain

// Game is an immutable catalog entry. The catalog is seeded once and
// read-only afterwards.
type Game struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	ImageURL    string  `db:"image_url" json:"image_url"`
	WinChance   float64 `db:"win_chance" json:"win_chance"`
	MinBet      int     `db:"min_bet" json:"min_bet"`
	MaxBet      int     `db:"max_bet" json:"max_bet"`
}

// AllowsWager checks a wager against the game's per-game limits.
func (g *Game) AllowsWager(minutes int) bool {
	return minutes >= g.MinBet && minutes <= g.MaxBet
}
