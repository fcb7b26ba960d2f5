package habits

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"planboard/internal/planner"
	"planboard/internal/services/events"
	"planboard/internal/utils/sanitize"

	"github.com/oklog/ulid/v2"
)

// streakWindow caps the backward streak scan. A year of consecutive days
// is the most the tracker ever reports.
const streakWindow = 365

// Persister flushes the habits key of the document.
type Persister interface {
	SaveHabits(ctx context.Context, habits []planner.Habit) error
}

// Bus defines the interface for event broadcasting
type Bus interface {
	Broadcast(ctx context.Context, ev events.Event)
}

// Service is the habit store: named daily trackers with a set of
// completed dates and a derived streak.
type Service struct {
	mu     sync.Mutex
	habits []planner.Habit
	store  Persister
	bus    Bus
	log    *slog.Logger

	// today is swapped out by tests that pin the streak clock.
	today func() planner.Day
}

// NewService creates a habit store seeded from the loaded document.
func NewService(seed []planner.Habit, store Persister, bus Bus, log *slog.Logger) *Service {
	s := &Service{
		habits: make([]planner.Habit, len(seed)),
		store:  store,
		bus:    bus,
		log:    log,
		today:  planner.Today,
	}
	for i, h := range seed {
		h.CompletedDates = append([]planner.Day{}, h.CompletedDates...)
		s.habits[i] = h
	}
	return s
}

// AddHabitRequest represents a habit creation request
type AddHabitRequest struct {
	Name     string `json:"name" validate:"required" example:"Meditate"`
	Category string `json:"category" example:"health"`
}

// HabitResponse represents a single habit response
type HabitResponse struct {
	Habit *planner.Habit `json:"habit"`
}

// HabitsResponse represents a list of habits response
type HabitsResponse struct {
	Habits []planner.Habit `json:"habits"`
}

// HabitStatus is a habit annotated with its completion for one date.
type HabitStatus struct {
	planner.Habit
	Completed bool `json:"completed"`
}

// Add creates a habit with an empty date set, a zero streak and a color
// drawn from the fixed palette.
func (s *Service) Add(ctx context.Context, req AddHabitRequest) (*planner.Habit, error) {
	name := sanitize.Clean(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	habit := planner.Habit{
		ID:             ulid.Make().String(),
		Name:           name,
		Category:       sanitize.Clean(req.Category),
		CompletedDates: []planner.Day{},
		Color:          planner.HabitPalette[rand.Intn(len(planner.HabitPalette))],
	}

	s.mu.Lock()
	s.habits = append(s.habits, habit)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.SaveHabits(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistHabits.Error(), "error", err, "habit_id", habit.ID)
		return nil, ErrPersistHabits
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeHabitAdded, Payload: habit})
	return &habit, nil
}

// Delete removes the habit with that id. Deleting an absent id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.SaveHabits(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistHabits.Error(), "error", err, "habit_id", id)
		return ErrPersistHabits
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeHabitDeleted, Payload: planner.Habit{ID: id}})
	return nil
}

// ToggleDate flips the habit's completion for one date: present dates are
// removed, absent ones added, so toggling twice restores the prior set.
// The streak is fully recomputed after either mutation.
func (s *Service) ToggleDate(ctx context.Context, id string, date planner.Day) (*planner.Habit, error) {
	if !date.Valid() {
		return nil, ErrInvalidDate
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrHabitNotFound
	}

	habit := &s.habits[idx]
	if pos := datePos(habit.CompletedDates, date); pos >= 0 {
		habit.CompletedDates = append(habit.CompletedDates[:pos], habit.CompletedDates[pos+1:]...)
	} else {
		habit.CompletedDates = append(habit.CompletedDates, date)
	}
	habit.Streak = streak(habit.CompletedDates, s.today())

	updated := *habit
	updated.CompletedDates = append([]planner.Day{}, habit.CompletedDates...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.SaveHabits(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistHabits.Error(), "error", err, "habit_id", id)
		return nil, ErrPersistHabits
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeHabitToggled, Payload: updated})
	return &updated, nil
}

// ByDate returns every habit with its completion flag for the given date.
func (s *Service) ByDate(date planner.Day) []HabitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]HabitStatus, len(s.habits))
	for i, h := range s.habits {
		copied := h
		copied.CompletedDates = append([]planner.Day{}, h.CompletedDates...)
		out[i] = HabitStatus{Habit: copied, Completed: h.CompletedOn(date)}
	}
	return out
}

// All returns a copy of every habit.
func (s *Service) All() []planner.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Reset replaces the in-memory collection without persisting (backup path).
func (s *Service) Reset(habits []planner.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = make([]planner.Habit, len(habits))
	for i, h := range habits {
		h.CompletedDates = append([]planner.Day{}, h.CompletedDates...)
		s.habits[i] = h
	}
}

// streak counts consecutive completed days walking backward from today,
// stopping at the first gap. An incomplete today yields zero.
func streak(dates []planner.Day, today planner.Day) int {
	present := make(map[planner.Day]struct{}, len(dates))
	for _, d := range dates {
		present[d] = struct{}{}
	}

	count := 0
	for i := 0; i < streakWindow; i++ {
		if _, ok := present[today.AddDays(-i)]; !ok {
			break
		}
		count++
	}
	return count
}

func (s *Service) snapshotLocked() []planner.Habit {
	out := make([]planner.Habit, len(s.habits))
	for i, h := range s.habits {
		h.CompletedDates = append([]planner.Day{}, h.CompletedDates...)
		out[i] = h
	}
	return out
}

func (s *Service) indexLocked(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func datePos(dates []planner.Day, date planner.Day) int {
	for i, d := range dates {
		if d == date {
			return i
		}
	}
	return -1
}
