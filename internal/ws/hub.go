package ws

import (
	"encoding/json"
	"sync"
	"time"

	"betvida/internal/domain"
	"betvida/internal/logger"
)

// BetEvent is pushed to feed subscribers whenever a bet settles.
type BetEvent struct {
	Type        string    `json:"type"` // always "bet_resolved"
	BetID       int64     `json:"bet_id"`
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
	GameID      string    `json:"game_id"`
	Minutes     int       `json:"minutes"`
	Result      string    `json:"result"`
	ResolvedAt  time.Time `json:"resolved_at"`
}

// NewBetEvent builds the feed payload for a resolved bet.
func NewBetEvent(b *domain.Bet, displayName string) BetEvent {
	resolvedAt := time.Now()
	if b.ResolvedAt != nil {
		resolvedAt = *b.ResolvedAt
	}
	result := ""
	if b.Result != nil {
		result = string(*b.Result)
	}
	return BetEvent{
		Type:        "bet_resolved",
		BetID:       b.ID,
		UserID:      b.UserID,
		DisplayName: displayName,
		GameID:      b.GameID,
		Minutes:     b.Minutes,
		Result:      result,
		ResolvedAt:  resolvedAt,
	}
}

// Hub fans resolved-bet events out to all connected feed clients. Slow
// clients are dropped rather than allowed to stall the broadcast.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast sends the event to every connected client. Never blocks the
// caller: a client with a full send buffer is disconnected.
func (h *Hub) Broadcast(ev BetEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Error("feed marshal failed", "error", err)
		return
	}

	h.mu.RLock()
	var stalled []*Client
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		logger.Warn("dropping stalled feed client")
		h.unregister(c)
	}
}

// ClientCount reports how many feed clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
