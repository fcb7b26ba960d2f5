package goals

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"planboard/internal/planner"
	"planboard/internal/services/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockPersister is a mock implementation of Persister
type MockPersister struct {
	mock.Mock
}

func (m *MockPersister) SaveGoals(ctx context.Context, goals planner.GoalSet) error {
	args := m.Called(ctx, goals)
	return args.Error(0)
}

// MockBus is a mock implementation of Bus
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Broadcast(ctx context.Context, ev events.Event) {
	m.Called(ctx, ev)
}

func newTestService(seed planner.GoalSet) (*Service, *MockPersister, *MockBus) {
	store := &MockPersister{}
	bus := &MockBus{}
	svc := NewService(seed, store, bus, silentLogger)
	svc.today = func() planner.Day { return "2025-06-10" }
	return svc, store, bus
}

func okPersist(store *MockPersister, bus *MockBus) {
	store.On("SaveGoals", mock.Anything, mock.Anything).Return(nil)
	bus.On("Broadcast", mock.Anything, mock.Anything).Return()
}

func TestService_Add(t *testing.T) {
	t.Run("ids are unique across categories", func(t *testing.T) {
		svc, store, bus := newTestService(planner.GoalSet{
			Personal: []planner.Goal{{ID: 1}},
			Creative: []planner.Goal{{ID: 5}},
		})
		okPersist(store, bus)

		goal, err := svc.Add(context.Background(), planner.GoalProfessional, AddGoalRequest{Text: "Ship the release"})
		require.NoError(t, err)
		assert.Equal(t, 6, goal.ID, "next id is 1 + max over all categories")
		assert.False(t, goal.Completed)
		assert.Zero(t, goal.Progress)
	})

	t.Run("deadline is validated", func(t *testing.T) {
		svc, _, _ := newTestService(planner.GoalSet{})
		_, err := svc.Add(context.Background(), planner.GoalPersonal, AddGoalRequest{Text: "x", Deadline: "soon"})
		assert.ErrorIs(t, err, ErrInvalidDeadline)
	})

	t.Run("empty text", func(t *testing.T) {
		svc, _, _ := newTestService(planner.GoalSet{})
		_, err := svc.Add(context.Background(), planner.GoalPersonal, AddGoalRequest{Text: "  "})
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, _, _ := newTestService(planner.GoalSet{})
		_, err := svc.Add(context.Background(), planner.GoalCategory("quarterly"), AddGoalRequest{Text: "x"})
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("persist failure", func(t *testing.T) {
		svc, store, bus := newTestService(planner.GoalSet{})
		store.On("SaveGoals", mock.Anything, mock.Anything).Return(errors.New("down"))
		_, err := svc.Add(context.Background(), planner.GoalPersonal, AddGoalRequest{Text: "x"})
		assert.ErrorIs(t, err, ErrPersistGoals)
		bus.AssertNotCalled(t, "Broadcast")
	})
}

func TestService_Toggle(t *testing.T) {
	seed := planner.GoalSet{Personal: []planner.Goal{{ID: 1, Text: "Run a 10k", Progress: 40}}}

	t.Run("completing sets progress and streak", func(t *testing.T) {
		svc, store, bus := newTestService(seed)
		okPersist(store, bus)

		goal, err := svc.Toggle(context.Background(), planner.GoalPersonal, 1)
		require.NoError(t, err)
		assert.True(t, goal.Completed)
		assert.Equal(t, 100, goal.Progress)
		assert.Equal(t, 1, goal.Streak)
		assert.Equal(t, planner.Day("2025-06-10"), goal.LastCompletedDate)
	})

	t.Run("same-day re-complete does not bump the streak twice", func(t *testing.T) {
		svc, store, bus := newTestService(seed)
		okPersist(store, bus)

		first, err := svc.Toggle(context.Background(), planner.GoalPersonal, 1)
		require.NoError(t, err)
		require.Equal(t, 1, first.Streak)

		// un-complete, then complete again on the same day
		_, err = svc.Toggle(context.Background(), planner.GoalPersonal, 1)
		require.NoError(t, err)
		again, err := svc.Toggle(context.Background(), planner.GoalPersonal, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, again.Streak, "lastCompletedDate guards same-day re-entry")
	})

	t.Run("next-day completion bumps the streak", func(t *testing.T) {
		svc, store, bus := newTestService(planner.GoalSet{Personal: []planner.Goal{
			{ID: 1, Completed: false, Streak: 3, LastCompletedDate: "2025-06-09"},
		}})
		okPersist(store, bus)

		goal, err := svc.Toggle(context.Background(), planner.GoalPersonal, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, goal.Streak)
	})

	t.Run("un-completing leaves progress and streak", func(t *testing.T) {
		svc, store, bus := newTestService(planner.GoalSet{Personal: []planner.Goal{
			{ID: 1, Completed: true, Progress: 100, Streak: 2, LastCompletedDate: "2025-06-10"},
		}})
		okPersist(store, bus)

		goal, err := svc.Toggle(context.Background(), planner.GoalPersonal, 1)
		require.NoError(t, err)
		assert.False(t, goal.Completed)
		assert.Equal(t, 100, goal.Progress)
		assert.Equal(t, 2, goal.Streak)
		assert.Equal(t, planner.Day("2025-06-10"), goal.LastCompletedDate)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(seed)
		_, err := svc.Toggle(context.Background(), planner.GoalPersonal, 99)
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})
}

func TestService_SetProgress(t *testing.T) {
	seed := planner.GoalSet{Creative: []planner.Goal{{ID: 1, Text: "Write a song"}}}

	tests := []struct {
		name          string
		value         int
		wantProgress  int
		wantCompleted bool
	}{
		{"plain value", 40, 40, false},
		{"reaching 100 completes", 100, 100, true},
		{"clamped above", 150, 100, true},
		{"clamped below", -5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, bus := newTestService(seed)
			okPersist(store, bus)

			goal, err := svc.SetProgress(context.Background(), planner.GoalCreative, 1, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProgress, goal.Progress)
			assert.Equal(t, tt.wantCompleted, goal.Completed)
		})
	}

	t.Run("dropping below 100 un-completes", func(t *testing.T) {
		svc, store, bus := newTestService(planner.GoalSet{Creative: []planner.Goal{
			{ID: 1, Completed: true, Progress: 100},
		}})
		okPersist(store, bus)

		goal, err := svc.SetProgress(context.Background(), planner.GoalCreative, 1, 90)
		require.NoError(t, err)
		assert.False(t, goal.Completed)
		assert.Equal(t, 90, goal.Progress)
	})
}

func TestService_SetReturnsCopy(t *testing.T) {
	svc, _, _ := newTestService(planner.GoalSet{Personal: []planner.Goal{{ID: 1, Text: "original"}}})

	set := svc.Set()
	set.Personal[0].Text = "mutated"

	assert.Equal(t, "original", svc.Set().Personal[0].Text)
}

func TestService_Reset(t *testing.T) {
	svc, store, _ := newTestService(planner.GoalSet{Personal: []planner.Goal{{ID: 1}}})

	svc.Reset(planner.GoalSet{Creative: []planner.Goal{{ID: 9}}})

	set := svc.Set()
	assert.Empty(t, set.Personal)
	require.Len(t, set.Creative, 1)
	assert.Equal(t, 9, set.Creative[0].ID)
	store.AssertNotCalled(t, "SaveGoals")
}
