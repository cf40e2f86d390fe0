package registry

import (
	"sync"
	"tradechat/internal/core/contracts"
)

// Registry maps a user id to that user's current connection.
type Registry struct {
	mu      sync.RWMutex
	clients map[int64]contracts.Client // user_id → client
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[int64]contracts.Client),
	}
}

// Register stores c for userID and hands back whatever it replaced.
// The replaced client is left as is.
func (h *Registry) Register(userID int64, c contracts.Client) contracts.Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.clients[userID]
	h.clients[userID] = c
	return prev
}

// UnregisterByConnection drops the entry holding c. The lookup is a linear
// scan because at disconnect time only the handle is known, and the user's
// entry may already point at a newer connection.
func (h *Registry) UnregisterByConnection(c contracts.Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, stored := range h.clients {
		if stored == c {
			delete(h.clients, userID)
			return true
		}
	}
	return false
}

func (h *Registry) AllOpen() []contracts.Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]contracts.Client, 0, len(h.clients))
	for _, c := range h.clients {
		if c.IsOpen() {
			out = append(out, c)
		}
	}
	return out
}

func (h *Registry) Get(userID int64) (contracts.Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[userID]
	return c, ok
}

func (h *Registry) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
