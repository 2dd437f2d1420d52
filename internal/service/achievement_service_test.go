package service

import (
	"context"
	"testing"

	"betvida/internal/domain"
)

func betHistory(results ...string) []*domain.Bet {
	// Builds a newest-first window from a chronological result list.
	var out []*domain.Bet
	for i := len(results) - 1; i >= 0; i-- {
		b := &domain.Bet{ID: int64(i + 1), Minutes: 1}
		switch results[i] {
		case "win":
			r := domain.BetResultWin
			b.Result = &r
		case "lose":
			r := domain.BetResultLose
			b.Result = &r
		}
		out = append(out, b)
	}
	return out
}

func TestMaxLossStreak(t *testing.T) {
	cases := []struct {
		name    string
		results []string
		want    int
	}{
		{"empty", nil, 0},
		{"no losses", []string{"win", "win"}, 0},
		{"win breaks streak", []string{"lose", "lose", "win", "lose", "lose", "lose"}, 3},
		{"pending breaks streak", []string{"lose", "lose", "pending", "lose"}, 2},
		{"all losses", []string{"lose", "lose", "lose", "lose"}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaxLossStreak(betHistory(tc.results...)); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWatchedMinutes(t *testing.T) {
	lose, win := domain.BetResultLose, domain.BetResultWin
	history := []*domain.Bet{
		{Minutes: 10, Result: &lose, Completed: true},
		{Minutes: 25, Result: &lose, Completed: true},
		{Minutes: 40, Result: &lose, Completed: false}, // assigned but unwatched
		{Minutes: 99, Result: &win},
	}
	if got := WatchedMinutes(history); got != 35 {
		t.Fatalf("got %d, want 35", got)
	}
}

func TestEarned_MinutesWagered(t *testing.T) {
	a := &domain.Achievement{ID: "minutes_wagered_60", RuleType: domain.RuleMinutesWagered, Threshold: 60}

	u := &domain.User{MinutesWon: 40, MinutesLost: 25}
	if !Earned(a, u, nil) {
		t.Fatal("65 wagered minutes must clear a threshold of 60")
	}

	u = &domain.User{MinutesWon: 30, MinutesLost: 29}
	if Earned(a, u, nil) {
		t.Fatal("59 wagered minutes must not clear a threshold of 60")
	}
}

func newAchievementFixture() (*AchievementService, *fakeStore) {
	f := newFakeStore()
	f.users[1] = &domain.User{ID: 1, ProviderUID: "uid-1", DisplayName: "Alice"}
	f.achievements = []*domain.Achievement{
		{ID: "first_bet", RuleType: domain.RuleFirstBet},
		{ID: "losses_3", RuleType: domain.RuleConsecutiveLosses, Threshold: 3},
		{ID: "wagered_10", RuleType: domain.RuleMinutesWagered, Threshold: 10},
	}
	return NewAchievementService(fakeUsers{f}, f, f, 100), f
}

func TestEvaluate_GrantsAndIdempotence(t *testing.T) {
	svc, f := newAchievementFixture()
	ctx := context.Background()

	lose := domain.BetResultLose
	for i := 0; i < 3; i++ {
		f.Create(ctx, &domain.Bet{UserID: 1, GameID: "fortune_tiger", Minutes: 4, Result: &lose})
	}
	f.users[1].MinutesLost = 12

	granted, err := svc.Evaluate(ctx, 1)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	want := []string{"first_bet", "losses_3", "wagered_10"}
	if len(granted) != len(want) {
		t.Fatalf("granted %v, want %v", granted, want)
	}
	for i, id := range want {
		if granted[i] != id {
			t.Fatalf("granted %v, want %v", granted, want)
		}
	}

	// Second sweep with no new bets grants nothing.
	granted, err = svc.Evaluate(ctx, 1)
	if err != nil {
		t.Fatalf("evaluate again: %v", err)
	}
	if len(granted) != 0 {
		t.Fatalf("re-evaluation must be a no-op, granted %v", granted)
	}
}

func TestEvaluate_StreakBrokenByWin(t *testing.T) {
	svc, f := newAchievementFixture()
	ctx := context.Background()

	// lose, lose, win, lose, lose chronologically: best streak is 2.
	lose, win := domain.BetResultLose, domain.BetResultWin
	for _, r := range []*domain.BetResult{&lose, &lose, &win, &lose, &lose} {
		f.Create(ctx, &domain.Bet{UserID: 1, GameID: "crash", Minutes: 1, Result: r})
	}

	granted, err := svc.Evaluate(ctx, 1)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, id := range granted {
		if id == "losses_3" {
			t.Fatal("streak of 2 must not grant a 3-loss badge")
		}
	}
}
