package domain

// RuleType - how an achievement is earned
type RuleType string

const (
	// RuleFirstBet is earned as soon as the user has any bet history.
	RuleFirstBet RuleType = "first_bet"
	// RuleMinutesWagered is earned when minutes_won + minutes_lost
	// reaches the threshold.
	RuleMinutesWagered RuleType = "minutes_wagered"
	// RuleConsecutiveLosses is earned when the longest contiguous run of
	// losses in the scanned history window reaches the threshold.
	RuleConsecutiveLosses RuleType = "consecutive_losses"
	// RuleVideoWatched is earned when the sum of wagered minutes over
	// lost, completed bets reaches the threshold.
	RuleVideoWatched RuleType = "video_watched"
)

// Achievement is an immutable catalog entry describing one badge rule.
type Achievement struct {
	ID          string   `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Description string   `db:"description" json:"description"`
	RuleType    RuleType `db:"rule_type" json:"rule_type"`
	Threshold   int64    `db:"threshold" json:"threshold"`
}
