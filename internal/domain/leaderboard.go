package domain

// LeaderboardEntry is one row of the minutes-won ranking. It is derived
// from the user aggregates, never recomputed from the bet ledger.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url,omitempty"`
	MinutesWon  int64  `json:"minutes_won"`
}
