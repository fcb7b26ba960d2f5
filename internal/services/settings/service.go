package settings

import (
	"context"
	"log/slog"
	"sync"

	"planboard/internal/planner"
	"planboard/internal/services/events"
	"planboard/internal/utils/sanitize"
)

// Persister flushes the settings key of the document.
type Persister interface {
	SaveSettings(ctx context.Context, settings planner.AppSettings) error
}

// Bus defines the interface for event broadcasting
type Bus interface {
	Broadcast(ctx context.Context, ev events.Event)
}

// Service is the settings store. Views that need to react to settings
// changes register an explicit subscription; subscribers are notified
// synchronously, in registration order, before the mutating call returns.
type Service struct {
	mu       sync.Mutex
	settings planner.AppSettings
	store    Persister
	bus      Bus
	log      *slog.Logger

	subMu   sync.Mutex
	subs    map[int]func(planner.AppSettings)
	nextSub int
}

// NewService creates a settings store seeded from the loaded document.
func NewService(seed planner.AppSettings, store Persister, bus Bus, log *slog.Logger) *Service {
	seed.CustomCategories = append([]string{}, seed.CustomCategories...)
	return &Service{
		settings: seed,
		store:    store,
		bus:      bus,
		log:      log,
		subs:     make(map[int]func(planner.AppSettings)),
	}
}

// UpdateSettingsRequest represents a partial settings update
type UpdateSettingsRequest struct {
	Theme       *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	ColorScheme *string `json:"colorScheme,omitempty" validate:"omitempty,oneof=blue green purple orange"`
	View        *string `json:"view,omitempty" validate:"omitempty,oneof=year month week"`
}

// CategoryRequest represents a custom category add/remove request
type CategoryRequest struct {
	Label string `json:"label" validate:"required" example:"travel"`
}

// SettingsResponse represents the settings response
type SettingsResponse struct {
	Settings planner.AppSettings `json:"settings"`
}

// Get returns a copy of the current settings.
func (s *Service) Get() planner.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for settings change notifications and returns
// the unsubscribe function.
func (s *Service) Subscribe(fn func(planner.AppSettings)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Update shallow-merges the given fields into the current settings,
// persists and notifies subscribers.
func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (planner.AppSettings, error) {
	s.mu.Lock()
	if req.Theme != nil {
		s.settings.Theme = planner.Theme(*req.Theme)
	}
	if req.ColorScheme != nil {
		s.settings.ColorScheme = planner.ColorScheme(*req.ColorScheme)
	}
	if req.View != nil {
		s.settings.View = planner.View(*req.View)
	}
	updated := s.snapshotLocked()
	s.mu.Unlock()

	return s.commit(ctx, updated)
}

// AddCustomCategory appends a user-defined category label. The set is
// duplicate-free and keeps insertion order; adding an existing label is
// a no-op.
func (s *Service) AddCustomCategory(ctx context.Context, label string) (planner.AppSettings, error) {
	label = sanitize.Clean(label)
	if label == "" {
		return planner.AppSettings{}, ErrEmptyCategory
	}

	s.mu.Lock()
	for _, c := range s.settings.CustomCategories {
		if c == label {
			current := s.snapshotLocked()
			s.mu.Unlock()
			return current, nil
		}
	}
	s.settings.CustomCategories = append(s.settings.CustomCategories, label)
	updated := s.snapshotLocked()
	s.mu.Unlock()

	return s.commit(ctx, updated)
}

// RemoveCustomCategory removes a user-defined category label. Removing an
// absent label is a no-op.
func (s *Service) RemoveCustomCategory(ctx context.Context, label string) (planner.AppSettings, error) {
	s.mu.Lock()
	kept := s.settings.CustomCategories[:0]
	removed := false
	for _, c := range s.settings.CustomCategories {
		if c == label {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	s.settings.CustomCategories = kept
	updated := s.snapshotLocked()
	s.mu.Unlock()

	if !removed {
		return updated, nil
	}
	return s.commit(ctx, updated)
}

// Reset replaces the in-memory settings without persisting (backup path).
// Subscribers are still notified so open views re-render.
func (s *Service) Reset(settings planner.AppSettings) {
	s.mu.Lock()
	settings.CustomCategories = append([]string{}, settings.CustomCategories...)
	s.settings = settings
	updated := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(updated)
}

// commit persists the updated settings, then notifies subscribers and the
// event hub. Notification happens after the store write so subscribers
// only ever observe durable state.
func (s *Service) commit(ctx context.Context, updated planner.AppSettings) (planner.AppSettings, error) {
	if err := s.store.SaveSettings(ctx, updated); err != nil {
		s.log.Error(ErrPersistSettings.Error(), "error", err)
		return planner.AppSettings{}, ErrPersistSettings
	}

	s.notify(updated)
	s.bus.Broadcast(ctx, events.Event{Type: events.TypeSettingsUpdated, Payload: updated})
	return updated, nil
}

func (s *Service) notify(settings planner.AppSettings) {
	s.subMu.Lock()
	fns := make([]func(planner.AppSettings), 0, len(s.subs))
	for id := 0; id < s.nextSub; id++ {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(settings)
	}
}

func (s *Service) snapshotLocked() planner.AppSettings {
	out := s.settings
	out.CustomCategories = append([]string{}, s.settings.CustomCategories...)
	return out
}
