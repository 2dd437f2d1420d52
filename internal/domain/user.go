package domain

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	ProviderUID  string    `db:"provider_uid" json:"provider_uid"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	PhotoURL     string    `db:"photo_url" json:"photo_url,omitempty"`
	MinutesWon   int64     `db:"minutes_won" json:"minutes_won"`
	MinutesLost  int64     `db:"minutes_lost" json:"minutes_lost"`
	TotalBets    int64     `db:"total_bets" json:"total_bets"`
	IsVIP        bool      `db:"is_vip" json:"is_vip"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	LastLogin    time.Time `db:"last_login" json:"last_login"`
}

// MinutesWagered is the lifetime total risked across resolved bets.
// minutes_won and minutes_lost only ever grow, so this is monotonic too.
func (u *User) MinutesWagered() int64 {
	return u.MinutesWon + u.MinutesLost
}

// HasAchievement reports whether the user already holds the achievement.
func (u *User) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
