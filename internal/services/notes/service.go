package notes

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"planboard/internal/planner"
	"planboard/internal/services/events"
	"planboard/internal/utils/sanitize"

	"github.com/oklog/ulid/v2"
)

// Persister flushes the notes key of the document.
type Persister interface {
	SaveNotes(ctx context.Context, notes []planner.Note) error
}

// Bus defines the interface for event broadcasting
type Bus interface {
	Broadcast(ctx context.Context, ev events.Event)
}

// Service is the note store: an in-memory collection of dated annotations,
// flushed to the document store after every mutation.
type Service struct {
	mu    sync.Mutex
	notes []planner.Note
	store Persister
	bus   Bus
	log   *slog.Logger
}

// NewService creates a note store seeded from the loaded document.
func NewService(seed []planner.Note, store Persister, bus Bus, log *slog.Logger) *Service {
	return &Service{
		notes: append([]planner.Note{}, seed...),
		store: store,
		bus:   bus,
		log:   log,
	}
}

// CreateNoteRequest represents a note creation request
type CreateNoteRequest struct {
	Date       string `json:"date" validate:"required" example:"2025-06-01"`
	Text       string `json:"text" validate:"required" example:"Dentist at noon"`
	Category   string `json:"category" validate:"omitempty,oneof=personal work health other" example:"health"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high" example:"high"`
	TimeSlot   string `json:"timeSlot" validate:"omitempty" example:"09:00"`
	IsTemplate bool   `json:"isTemplate"`
}

// UpdateNoteRequest represents a partial note update request
type UpdateNoteRequest struct {
	Date     *string `json:"date,omitempty"`
	Text     *string `json:"text,omitempty"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=personal work health other"`
	Priority *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	TimeSlot *string `json:"timeSlot,omitempty"`
}

// NoteResponse represents a single note response
type NoteResponse struct {
	Note *planner.Note `json:"note"`
}

// NotesResponse represents a list of notes response
type NotesResponse struct {
	Notes []planner.Note `json:"notes"`
	Total int            `json:"total" example:"12"`
}

// Create adds a new note. Text is cleaned before storage; a note whose
// text cleans to empty or whose date is not a calendar date is rejected.
func (s *Service) Create(ctx context.Context, req CreateNoteRequest) (*planner.Note, error) {
	text := sanitize.Clean(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	date, err := planner.ParseDay(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !planner.ValidTimeSlot(req.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	note := planner.Note{
		ID:         ulid.Make().String(),
		Date:       date,
		Text:       text,
		Category:   noteCategory(req.Category),
		Priority:   notePriority(req.Priority),
		TimeSlot:   req.TimeSlot,
		IsTemplate: req.IsTemplate,
	}

	s.mu.Lock()
	s.notes = append(s.notes, note)
	snapshot := append([]planner.Note{}, s.notes...)
	s.mu.Unlock()

	if err := s.store.SaveNotes(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistNotes.Error(), "error", err, "note_id", note.ID)
		return nil, ErrPersistNotes
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeNoteCreated, Payload: note})
	return &note, nil
}

// Update replaces the given fields on the note with that id.
func (s *Service) Update(ctx context.Context, id string, req UpdateNoteRequest) (*planner.Note, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrNoteNotFound
	}

	note := s.notes[idx]
	if req.Text != nil {
		text := sanitize.Clean(*req.Text)
		if text == "" {
			s.mu.Unlock()
			return nil, ErrEmptyText
		}
		note.Text = text
	}
	if req.Date != nil {
		date, err := planner.ParseDay(*req.Date)
		if err != nil {
			s.mu.Unlock()
			return nil, ErrInvalidDate
		}
		note.Date = date
	}
	if req.TimeSlot != nil {
		if !planner.ValidTimeSlot(*req.TimeSlot) {
			s.mu.Unlock()
			return nil, ErrInvalidTimeSlot
		}
		note.TimeSlot = *req.TimeSlot
	}
	if req.Category != nil {
		note.Category = noteCategory(*req.Category)
	}
	if req.Priority != nil {
		note.Priority = notePriority(*req.Priority)
	}

	s.notes[idx] = note
	snapshot := append([]planner.Note{}, s.notes...)
	s.mu.Unlock()

	if err := s.store.SaveNotes(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistNotes.Error(), "error", err, "note_id", id)
		return nil, ErrPersistNotes
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeNoteUpdated, Payload: note})
	return &note, nil
}

// Delete removes the note with that id. Deleting an absent id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	snapshot := append([]planner.Note{}, s.notes...)
	s.mu.Unlock()

	if err := s.store.SaveNotes(ctx, snapshot); err != nil {
		s.log.Error(ErrPersistNotes.Error(), "error", err, "note_id", id)
		return ErrPersistNotes
	}

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeNoteDeleted, Payload: planner.Note{ID: id}})
	return nil
}

// ByDate returns the notes on the given date in display order: notes with
// a time slot sort lexicographically by slot and precede all notes
// without one; within each group earlier ties break by priority (high,
// medium, low) and full ties keep their original relative order.
func (s *Service) ByDate(date planner.Day) []planner.Note {
	s.mu.Lock()
	out := make([]planner.Note, 0, 4)
	for _, n := range s.notes {
		if n.Date == date {
			out = append(out, n)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aSlotted, bSlotted := a.TimeSlot != "", b.TimeSlot != ""
		if aSlotted != bSlotted {
			return aSlotted
		}
		if aSlotted && a.TimeSlot != b.TimeSlot {
			return a.TimeSlot < b.TimeSlot
		}
		return a.Priority.Rank() < b.Priority.Rank()
	})
	return out
}

// Search returns notes whose text or category contains the term,
// case-insensitively. An empty term matches everything.
func (s *Service) Search(term string) []planner.Note {
	needle := strings.ToLower(term)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]planner.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if strings.Contains(strings.ToLower(n.Text), needle) ||
			strings.Contains(strings.ToLower(string(n.Category)), needle) {
			out = append(out, n)
		}
	}
	return out
}

// All returns a copy of every note.
func (s *Service) All() []planner.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]planner.Note{}, s.notes...)
}

// Reset replaces the in-memory collection without persisting. The backup
// service uses it when importing or clearing a document; the caller is
// responsible for the single document flush.
func (s *Service) Reset(notes []planner.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]planner.Note{}, notes...)
}

func (s *Service) indexLocked(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func noteCategory(s string) planner.NoteCategory {
	if s == "" {
		return planner.CategoryPersonal
	}
	return planner.NoteCategory(s)
}

func notePriority(s string) planner.Priority {
	if s == "" {
		return planner.PriorityMedium
	}
	return planner.Priority(s)
}
