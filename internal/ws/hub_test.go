package ws

import (
	"encoding/json"
	"testing"
	"time"

	"betvida/internal/domain"
)

func TestBroadcast_FanOut(t *testing.T) {
	h := NewHub()

	c1 := &Client{hub: h, send: make(chan []byte, 1)}
	c2 := &Client{hub: h, send: make(chan []byte, 1)}
	h.register(c1)
	h.register(c2)

	lose := domain.BetResultLose
	now := time.Now()
	bet := &domain.Bet{ID: 7, UserID: 1, GameID: "crash", Minutes: 5, Result: &lose, ResolvedAt: &now}

	h.Broadcast(NewBetEvent(bet, "Alice"))

	for _, c := range []*Client{c1, c2} {
		select {
		case payload := <-c.send:
			var ev BetEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if ev.Type != "bet_resolved" || ev.BetID != 7 || ev.Result != "lose" || ev.DisplayName != "Alice" {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			t.Fatal("client did not receive the event")
		}
	}
}

func TestBroadcast_DropsStalledClient(t *testing.T) {
	h := NewHub()

	stalled := &Client{hub: h, send: make(chan []byte)} // no buffer, never read
	healthy := &Client{hub: h, send: make(chan []byte, 1)}
	h.register(stalled)
	h.register(healthy)

	bet := &domain.Bet{ID: 1, UserID: 1, GameID: "roulette", Minutes: 1}
	h.Broadcast(NewBetEvent(bet, ""))

	if got := h.ClientCount(); got != 1 {
		t.Fatalf("stalled client must be dropped, have %d clients", got)
	}
	select {
	case <-healthy.send:
	default:
		t.Fatal("healthy client must still receive the event")
	}
}
