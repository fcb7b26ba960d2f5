package goals

import (
	"context"
	"log/slog"
	"sync"

	"planboard/internal/planner"
	"planboard/internal/services/events"
	"planboard/internal/utils/sanitize"
)

// Persister flushes the goals key of the document.
type Persister interface {
	SaveGoals(ctx context.Context, goals planner.GoalSet) error
}

// Bus defines the interface for event broadcasting
type Bus interface {
	Broadcast(ctx context.Context, ev events.Event)
}

// Service is the goal store: three fixed category lists with completion
// and streak bookkeeping. Goal ids are assigned from a single sequence
// across all categories, so they stay globally unique even though the
// lists are partitioned.
type Service struct {
	mu    sync.Mutex
	goals planner.GoalSet
	store Persister
	bus   Bus
	log   *slog.Logger

	// today is swapped out by tests that pin the streak clock.
	today func() planner.Day
}

// NewService creates a goal store seeded from the loaded document.
func NewService(seed planner.GoalSet, store Persister, bus Bus, log *slog.Logger) *Service {
	return &Service{
		goals: planner.GoalSet{
			Personal:     append([]planner.Goal{}, seed.Personal...),
			Professional: append([]planner.Goal{}, seed.Professional...),
			Creative:     append([]planner.Goal{}, seed.Creative...),
		},
		store: store,
		bus:   bus,
		log:   log,
		today: planner.Today,
	}
}

// AddGoalRequest represents a goal creation request
type AddGoalRequest struct {
	Text     string `json:"text" validate:"required" example:"Run a 10k"`
	Deadline string `json:"deadline" validate:"omitempty" example:"2025-09-01"`
}

// SetProgressRequest represents a progress update request
type SetProgressRequest struct {
	Progress int `json:"progress" example:"40"`
}

// GoalResponse represents a single goal response
type GoalResponse struct {
	Goal *planner.Goal `json:"goal"`
}

// GoalsResponse represents the full goal set response
type GoalsResponse struct {
	Goals planner.GoalSet `json:"goals"`
}

// Add creates a goal in the given category with id = 1 + the maximum id
// across all categories combined.
func (s *Service) Add(ctx context.Context, cat planner.GoalCategory, req AddGoalRequest) (*planner.Goal, error) {
	text := sanitize.Clean(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	var deadline planner.Day
	if req.Deadline != "" {
		d, err := planner.ParseDay(req.Deadline)
		if err != nil {
			return nil, ErrInvalidDeadline
		}
		deadline = d
	}

	s.mu.Lock()
	list := s.goals.List(cat)
	if list == nil {
		s.mu.Unlock()
		return nil, ErrUnknownCategory
	}

	goal := planner.Goal{
		ID:       s.goals.MaxID() + 1,
		Text:     text,
		Deadline: deadline,
	}
	*list = append(*list, goal)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.SaveGoals(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistGoals.Error(), "error", err, "category", cat, "goal_id", goal.ID)
		return nil, ErrPersistGoals
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeGoalAdded, Payload: goal})
	return &goal, nil
}

// Toggle flips a goal's completed flag. Completing sets progress to 100,
// bumps the streak once per calendar day (lastCompletedDate guards
// re-entrance) and stamps lastCompletedDate. Un-completing leaves
// progress, streak and lastCompletedDate untouched.
func (s *Service) Toggle(ctx context.Context, cat planner.GoalCategory, id int) (*planner.Goal, error) {
	s.mu.Lock()
	goal, err := s.findLocked(cat, id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if !goal.Completed {
		goal.Completed = true
		goal.Progress = 100
		today := s.today()
		if goal.LastCompletedDate != today {
			goal.Streak++
		}
		goal.LastCompletedDate = today
	} else {
		goal.Completed = false
	}

	updated := *goal
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.SaveGoals(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistGoals.Error(), "error", err, "category", cat, "goal_id", id)
		return nil, ErrPersistGoals
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeGoalToggled, Payload: updated})
	return &updated, nil
}

// SetProgress sets a goal's progress, clamped to [0,100], and derives
// completed from it: the goal is complete exactly when progress reaches
// 100. The coupling is one-directional; un-completing via Toggle never
// resets progress.
func (s *Service) SetProgress(ctx context.Context, cat planner.GoalCategory, id, value int) (*planner.Goal, error) {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	s.mu.Lock()
	goal, err := s.findLocked(cat, id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	goal.Progress = value
	goal.Completed = value >= 100

	updated := *goal
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.SaveGoals(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistGoals.Error(), "error", err, "category", cat, "goal_id", id)
		return nil, ErrPersistGoals
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeGoalProgress, Payload: updated})
	return &updated, nil
}

// Set returns a copy of the full goal set.
func (s *Service) Set() planner.GoalSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Reset replaces the in-memory goal set without persisting (backup path).
func (s *Service) Reset(goals planner.GoalSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = planner.GoalSet{
		Personal:     append([]planner.Goal{}, goals.Personal...),
		Professional: append([]planner.Goal{}, goals.Professional...),
		Creative:     append([]planner.Goal{}, goals.Creative...),
	}
}

func (s *Service) snapshotLocked() planner.GoalSet {
	return planner.GoalSet{
		Personal:     append([]planner.Goal{}, s.goals.Personal...),
		Professional: append([]planner.Goal{}, s.goals.Professional...),
		Creative:     append([]planner.Goal{}, s.goals.Creative...),
	}
}

func (s *Service) findLocked(cat planner.GoalCategory, id int) (*planner.Goal, error) {
	list := s.goals.List(cat)
	if list == nil {
		return nil, ErrUnknownCategory
	}
	for i := range *list {
		if (*list)[i].ID == id {
			return &(*list)[i], nil
		}
	}
	return nil, ErrGoalNotFound
}
