// Package events carries document change notifications from the stores to
// live view subscribers.
package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"planboard/internal/logger"

	"github.com/oklog/ulid/v2"
)

// Event types emitted by the stores.
const (
	TypeNoteCreated      = "note.created"
	TypeNoteUpdated      = "note.updated"
	TypeNoteDeleted      = "note.deleted"
	TypeGoalAdded        = "goal.added"
	TypeGoalToggled      = "goal.toggled"
	TypeGoalProgress     = "goal.progress"
	TypeHabitAdded       = "habit.added"
	TypeHabitDeleted     = "habit.deleted"
	TypeHabitToggled     = "habit.toggled"
	TypeSettingsUpdated  = "settings.updated"
	TypeDocumentImported = "document.imported"
	TypeDocumentCleared  = "document.cleared"
)

// Event is a single document change notification.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Subscriber represents a connection that can receive document events
type Subscriber struct {
	Ch   chan Event
	Done chan struct{}
}

// ConnInfo holds connection metadata
type ConnInfo struct {
	ID          ulid.ULID
	ConnectedAt time.Time
	Subscriber  *Subscriber
}

// Hub manages live connections and broadcasts document events to all of
// them. The document is single-user, so every subscriber sees every event.
type Hub struct {
	mu         sync.RWMutex
	subs       map[ulid.ULID]ConnInfo
	bufferSize int
	dropped    uint64
}

// NewHub creates a new event hub with configurable buffer size
func NewHub(bufferSize int) *Hub {
	return &Hub{
		subs:       make(map[ulid.ULID]ConnInfo),
		bufferSize: bufferSize,
	}
}

// Subscribe adds a new subscriber to the hub
func (h *Hub) Subscribe(connULID ulid.ULID) (*Subscriber, func()) {
	log := logger.L()
	if log != nil && log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("subscribing connection", "conn_id", connULID.String())
	}

	sub := &Subscriber{
		Ch:   make(chan Event, h.bufferSize),
		Done: make(chan struct{}),
	}

	h.mu.Lock()
	h.subs[connULID] = ConnInfo{
		ID:          connULID,
		ConnectedAt: time.Now(),
		Subscriber:  sub,
	}
	h.mu.Unlock()

	cancel := func() {
		h.Unsubscribe(connULID)
	}
	return sub, cancel
}

// Unsubscribe removes a subscriber from the hub
func (h *Hub) Unsubscribe(connULID ulid.ULID) {
	h.mu.Lock()
	connInfo, exists := h.subs[connULID]
	if exists {
		delete(h.subs, connULID)
	}
	h.mu.Unlock()

	if exists {
		close(connInfo.Subscriber.Ch)
		close(connInfo.Subscriber.Done)
	}
}

// Broadcast delivers ev to every current subscriber
func (h *Hub) Broadcast(_ context.Context, ev Event) {
	log := logger.L()
	if log != nil && log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("broadcasting event", "event_type", ev.Type)
	}

	h.mu.RLock()
	for _, connInfo := range h.subs {
		sendOrDrop(connInfo.Subscriber.Ch, ev, func() {
			atomic.AddUint64(&h.dropped, 1)
			if log != nil {
				log.Warn("outbox full, dropping event", "conn_id", connInfo.ID.String(), "event_type", ev.Type)
			}
		})
	}
	h.mu.RUnlock()
}

// SubscriberCount returns the current number of subscribers (for testing)
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// sendOrDrop is the only place that can decide to drop an event.
func sendOrDrop(ch chan Event, ev Event, onDrop func()) {
	select {
	case ch <- ev: // hot path, no nesting
	default:
		onDrop()
	}
}

// Stats returns current counters for observability / tests.
func (h *Hub) Stats() (subscribers int, dropped uint64) {
	return h.SubscriberCount(), atomic.LoadUint64(&h.dropped)
}
