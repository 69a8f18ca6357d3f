package events

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Nudge is a single NOTIFY delivery fanned out to in-process
// subscribers. Type is parsed from the payload for cheap routing;
// Payload carries the raw JSON for consumers that want the details.
type Nudge struct {
	Channel string
	Type    string
	Payload []byte
}

// Hub fans NOTIFY payloads out to subscribed workers. Each Go process
// (pod) has one Hub instance, fed by its NotifyListener.
//
// Subscriptions are coalescing: the per-subscriber channel holds one
// pending nudge, and further nudges arriving before the worker reads
// are dropped. A worker that wakes up scans its whole backlog, so one
// wakeup per burst is all it needs.
type Hub struct {
	mu      sync.RWMutex
	nextID  int
	waiters map[string]map[int]chan Nudge
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{waiters: make(map[string]map[int]chan Nudge)}
}

// Subscribe registers a waiter for a channel and returns the nudge
// channel plus a cancel func that removes the registration. Safe to
// call from any goroutine.
func (h *Hub) Subscribe(channel string) (<-chan Nudge, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan Nudge, 1)
	if h.waiters[channel] == nil {
		h.waiters[channel] = make(map[int]chan Nudge)
	}
	h.waiters[channel][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.waiters[channel]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(h.waiters, channel)
			}
		}
	}
	return ch, cancel
}

// Dispatch routes a raw NOTIFY payload to every waiter on the channel.
// Implements the listener's Dispatcher. Sends never block: a waiter
// that already has a pending nudge keeps the one it has.
func (h *Hub) Dispatch(channel string, payload []byte) {
	var routing struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		// Still worth a wakeup — the payload signals activity even if
		// it doesn't parse.
		slog.Warn("Undecodable NOTIFY payload", "channel", channel, "error", err)
	}

	nudge := Nudge{Channel: channel, Type: routing.Type, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.waiters[channel] {
		select {
		case ch <- nudge:
		default:
		}
	}
}

// SubscriberCount returns the number of waiters on a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.waiters[channel])
}
