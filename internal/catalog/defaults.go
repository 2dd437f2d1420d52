// Package catalog holds the default reference data: the game, video and
// achievement catalogs seeded once by cmd/seed_catalog. All of it is
// immutable at runtime.
package catalog

import "betvida/internal/domain"

// Games is the default game catalog. Each game carries its own win
// probability and wager limits in minutes.
var Games = []domain.Game{
	{
		ID:          "fortune_tiger",
		Name:        "Fortune Tiger",
		Description: "Lucky tiger slot",
		ImageURL:    "https://static.wikia.nocookie.net/slot/images/2/2d/FortuneTiger.png",
		WinChance:   0.40,
		MinBet:      1,
		MaxBet:      60,
	},
	{
		ID:          "fortune_ox",
		Name:        "Fortune Ox",
		Description: "Lucky ox slot",
		ImageURL:    "https://img.cacaniqueisonline.com/wp-content/uploads/2023/05/fortune-ox.jpg",
		WinChance:   0.38,
		MinBet:      1,
		MaxBet:      50,
	},
	{
		ID:          "fortune_rabbit",
		Name:        "Fortune Rabbit",
		Description: "Lucky rabbit slot",
		ImageURL:    "https://img.cacaniqueisonline.com/wp-content/uploads/2024/01/fortune-rabbit.jpg",
		WinChance:   0.42,
		MinBet:      1,
		MaxBet:      45,
	},
	{
		ID:          "fortune_dragon",
		Name:        "Fortune Dragon",
		Description: "Lucky dragon slot",
		ImageURL:    "https://www.askgamblers.com/uploads/slot_screenshot/gamereview_screenshot/98/9b/65/dd95c0782c9e4b4c9e3e5f2c5a8e1c5a.webp",
		WinChance:   0.37,
		MinBet:      1,
		MaxBet:      70,
	},
	{
		ID:          "fortune_mouse",
		Name:        "Fortune Mouse",
		Description: "Lucky mouse slot",
		ImageURL:    "https://img.cacaniqueisonline.com/wp-content/uploads/2024/05/fotune-mouse.jpg",
		WinChance:   0.43,
		MinBet:      1,
		MaxBet:      40,
	},
	{
		ID:          "crash",
		Name:        "Crash",
		Description: "Cash out before the curve crashes",
		ImageURL:    "https://cdn-icons-png.flaticon.com/512/3523/3523887.png",
		WinChance:   0.35,
		MinBet:      1,
		MaxBet:      120,
	},
	{
		ID:          "roulette",
		Name:        "Roulette",
		Description: "Classic casino roulette",
		ImageURL:    "https://cdn-icons-png.flaticon.com/512/1043/1043467.png",
		WinChance:   0.45,
		MinBet:      1,
		MaxBet:      30,
	},
}

// Videos is the default penalty video catalog.
var Videos = []domain.Video{
	{
		ID:              "video1",
		Title:           "Motivational Video 1",
		Category:        "motivational",
		YoutubeID:       "dQw4w9WgXcQ",
		DurationSeconds: 5 * 60,
	},
	{
		ID:              "video2",
		Title:           "Motivational Video 2",
		Category:        "motivational",
		YoutubeID:       "ZXsQAXx_ao0",
		DurationSeconds: 1 * 60,
	},
	{
		ID:              "video3",
		Title:           "Educational Video",
		Category:        "educational",
		YoutubeID:       "8nW-IPrzM1g",
		DurationSeconds: 10 * 60,
	},
}

// Achievements is the default badge catalog.
var Achievements = []domain.Achievement{
	{
		ID:          "first_bet",
		Name:        "First Bet",
		Description: "Place your first bet",
		RuleType:    domain.RuleFirstBet,
		Threshold:   1,
	},
	{
		ID:          "minutes_wagered_10",
		Name:        "10 Minutes Wagered",
		Description: "Wager a total of 10 minutes",
		RuleType:    domain.RuleMinutesWagered,
		Threshold:   10,
	},
	{
		ID:          "minutes_wagered_60",
		Name:        "One Hour Wagered",
		Description: "Wager a total of 60 minutes",
		RuleType:    domain.RuleMinutesWagered,
		Threshold:   60,
	},
	{
		ID:          "consecutive_losses_3",
		Name:        "3 Losses In A Row",
		Description: "Lose 3 consecutive bets",
		RuleType:    domain.RuleConsecutiveLosses,
		Threshold:   3,
	},
	{
		ID:          "consecutive_losses_5",
		Name:        "5 Losses In A Row",
		Description: "Lose 5 consecutive bets",
		RuleType:    domain.RuleConsecutiveLosses,
		Threshold:   5,
	},
	{
		ID:          "video_watched_30",
		Name:        "30 Minutes Of Video",
		Description: "Watch 30 minutes of penalty videos",
		RuleType:    domain.RuleVideoWatched,
		Threshold:   30,
	},
}
