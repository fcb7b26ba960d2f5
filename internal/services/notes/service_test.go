package notes

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

func (m *MockPersister) SaveNotes(ctx context.Context, notes []planner.Note) error {
	args := m.Called(ctx, notes)
	return args.Error(0)
}

// MockBus is a mock implementation of Bus
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Broadcast(ctx context.Context, ev events.Event) {
	m.Called(ctx, ev)
}

func newTestService(seed ...planner.Note) (*Service, *MockPersister, *MockBus) {
	store := &MockPersister{}
	bus := &MockBus{}
	return NewService(seed, store, bus, silentLogger), store, bus
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateNoteRequest
		wantErr error
	}{
		{
			name: "minimal note gets defaults",
			req:  CreateNoteRequest{Date: "2025-06-01", Text: "Dentist at noon"},
		},
		{
			name: "full note",
			req: CreateNoteRequest{
				Date:     "2025-06-01",
				Text:     "Standup",
				Category: "work",
				Priority: "high",
				TimeSlot: "09:00",
			},
		},
		{
			name:    "empty text",
			req:     CreateNoteRequest{Date: "2025-06-01", Text: "   "},
			wantErr: ErrEmptyText,
		},
		{
			name:    "markup-only text cleans to empty",
			req:     CreateNoteRequest{Date: "2025-06-01", Text: "<script>alert(1)</script>"},
			wantErr: ErrEmptyText,
		},
		{
			name:    "invalid date",
			req:     CreateNoteRequest{Date: "June 1st", Text: "hi"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "invalid time slot",
			req:     CreateNoteRequest{Date: "2025-06-01", Text: "hi", TimeSlot: "9am"},
			wantErr: ErrInvalidTimeSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, bus := newTestService()
			if tt.wantErr == nil {
				store.On("SaveNotes", mock.Anything, mock.Anything).Return(nil)
				bus.On("Broadcast", mock.Anything, mock.Anything).Return()
			}

			note, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, svc.All(), "rejected create must not mutate")
				store.AssertNotCalled(t, "SaveNotes")
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, note.ID)
			assert.Equal(t, planner.Day(tt.req.Date), note.Date)
			if tt.req.Category == "" {
				assert.Equal(t, planner.CategoryPersonal, note.Category)
			}
			if tt.req.Priority == "" {
				assert.Equal(t, planner.PriorityMedium, note.Priority)
			}
			store.AssertExpectations(t)
			bus.AssertExpectations(t)
		})
	}
}

func TestService_Create_PersistFailure(t *testing.T) {
	svc, store, bus := newTestService()
	store.On("SaveNotes", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.Create(context.Background(), CreateNoteRequest{Date: "2025-06-01", Text: "hi"})
	assert.ErrorIs(t, err, ErrPersistNotes)
	bus.AssertNotCalled(t, "Broadcast")
}

func TestService_Update(t *testing.T) {
	seed := planner.Note{ID: "n1", Date: "2025-06-01", Text: "old", Category: planner.CategoryWork, Priority: planner.PriorityLow}

	t.Run("partial update leaves other fields", func(t *testing.T) {
		svc, store, bus := newTestService(seed)
		store.On("SaveNotes", mock.Anything, mock.Anything).Return(nil)
		bus.On("Broadcast", mock.Anything, mock.Anything).Return()

		text := "new text"
		note, err := svc.Update(context.Background(), "n1", UpdateNoteRequest{Text: &text})
		require.NoError(t, err)
		assert.Equal(t, "new text", note.Text)
		assert.Equal(t, planner.CategoryWork, note.Category)
		assert.Equal(t, planner.PriorityLow, note.Priority)
		assert.Equal(t, planner.Day("2025-06-01"), note.Date)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(seed)
		text := "x"
		_, err := svc.Update(context.Background(), "nope", UpdateNoteRequest{Text: &text})
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})

	t.Run("invalid date rejected without mutation", func(t *testing.T) {
		svc, store, _ := newTestService(seed)
		bad := "not-a-date"
		_, err := svc.Update(context.Background(), "n1", UpdateNoteRequest{Date: &bad})
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.Equal(t, planner.Day("2025-06-01"), svc.All()[0].Date)
		store.AssertNotCalled(t, "SaveNotes")
	})

	t.Run("clearing the time slot", func(t *testing.T) {
		slotted := seed
		slotted.TimeSlot = "09:00"
		svc, store, bus := newTestService(slotted)
		store.On("SaveNotes", mock.Anything, mock.Anything).Return(nil)
		bus.On("Broadcast", mock.Anything, mock.Anything).Return()

		empty := ""
		note, err := svc.Update(context.Background(), "n1", UpdateNoteRequest{TimeSlot: &empty})
		require.NoError(t, err)
		assert.Empty(t, note.TimeSlot)
	})
}

func TestService_Delete(t *testing.T) {
	seed := planner.Note{ID: "n1", Date: "2025-06-01", Text: "hello"}

	t.Run("removes the note", func(t *testing.T) {
		svc, store, bus := newTestService(seed)
		store.On("SaveNotes", mock.Anything, mock.Anything).Return(nil)
		bus.On("Broadcast", mock.Anything, mock.Anything).Return()

		require.NoError(t, svc.Delete(context.Background(), "n1"))
		assert.Empty(t, svc.All())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		svc, store, bus := newTestService(seed)

		require.NoError(t, svc.Delete(context.Background(), "ghost"))
		assert.Len(t, svc.All(), 1)
		store.AssertNotCalled(t, "SaveNotes")
		bus.AssertNotCalled(t, "Broadcast")
	})
}

func TestService_ByDate_Ordering(t *testing.T) {
	// insertion order deliberately scrambled
	svc, _, _ := newTestService(
		planner.Note{ID: "slotless-low", Date: "2025-06-01", Text: "a", Priority: planner.PriorityLow},
		planner.Note{ID: "late-slot", Date: "2025-06-01", Text: "b", TimeSlot: "14:00", Priority: planner.PriorityLow},
		planner.Note{ID: "other-day", Date: "2025-06-02", Text: "c", TimeSlot: "08:00"},
		planner.Note{ID: "slotless-high", Date: "2025-06-01", Text: "d", Priority: planner.PriorityHigh},
		planner.Note{ID: "early-slot", Date: "2025-06-01", Text: "e", TimeSlot: "09:30", Priority: planner.PriorityMedium},
		planner.Note{ID: "tie-first", Date: "2025-06-01", Text: "f", TimeSlot: "09:30", Priority: planner.PriorityMedium},
	)

	got := svc.ByDate("2025-06-01")

	ids := make([]string, len(got))
	for i, n := range got {
		ids[i] = n.ID
	}
	// slotted first in slot order, equal slots keep insertion order,
	// then slotless by priority
	assert.Equal(t, []string{"early-slot", "tie-first", "late-slot", "slotless-high", "slotless-low"}, ids)
}

func TestService_Search(t *testing.T) {
	svc, _, _ := newTestService(
		planner.Note{ID: "1", Date: "2025-06-01", Text: "Buy groceries", Category: planner.CategoryPersonal},
		planner.Note{ID: "2", Date: "2025-06-02", Text: "Quarterly review", Category: planner.CategoryWork},
		planner.Note{ID: "3", Date: "2025-06-03", Text: "gym session", Category: planner.CategoryHealth},
	)

	tests := []struct {
		name string
		term string
		want int
	}{
		{"matches text case-insensitively", "GROCERIES", 1},
		{"matches category", "work", 1},
		{"empty term matches all", "", 3},
		{"no match", "zebra", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, svc.Search(tt.term), tt.want)
		})
	}
}

func TestService_Reset(t *testing.T) {
	svc, store, _ := newTestService(planner.Note{ID: "n1", Date: "2025-06-01", Text: "x"})

	svc.Reset([]planner.Note{{ID: "n2", Date: "2025-06-02", Text: "y"}})

	all := svc.All()
	require.Len(t, all, 1)
	assert.Equal(t, "n2", all[0].ID)
	store.AssertNotCalled(t, "SaveNotes")
}
