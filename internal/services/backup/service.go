// Package backup implements whole-document export, import and clear.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"planboard/internal/planner"
	"planboard/internal/services/events"
)

// NoteStore is the slice of the note store the backup service needs.
type NoteStore interface {
	All() []planner.Note
	Reset(notes []planner.Note)
}

// GoalStore is the slice of the goal store the backup service needs.
type GoalStore interface {
	Set() planner.GoalSet
	Reset(goals planner.GoalSet)
}

// HabitStore is the slice of the habit store the backup service needs.
type HabitStore interface {
	All() []planner.Habit
	Reset(habits []planner.Habit)
}

// SettingsStore is the slice of the settings store the backup service needs.
type SettingsStore interface {
	Get() planner.AppSettings
	Reset(settings planner.AppSettings)
}

// Persister flushes the whole document at once.
type Persister interface {
	SaveDocument(ctx context.Context, doc *planner.Document) error
}

// Bus defines the interface for event broadcasting
type Bus interface {
	Broadcast(ctx context.Context, ev events.Event)
}

// Service implements document-level operations that cut across every
// store: export to a backup file, import from one, and clear-all.
type Service struct {
	notes    NoteStore
	goals    GoalStore
	habits   HabitStore
	settings SettingsStore
	store    Persister
	bus      Bus
	log      *slog.Logger

	// today is swapped out by tests that pin the export filename.
	today func() planner.Day
}

// NewService wires the backup service over the four stores.
func NewService(notes NoteStore, goals GoalStore, habits HabitStore, settings SettingsStore, store Persister, bus Bus, log *slog.Logger) *Service {
	return &Service{
		notes:    notes,
		goals:    goals,
		habits:   habits,
		settings: settings,
		store:    store,
		bus:      bus,
		log:      log,
		today:    planner.Today,
	}
}

// partialDocument mirrors Document with optional top-level keys, so an
// import replaces exactly the keys present in the file.
type partialDocument struct {
	Notes    *[]planner.Note      `json:"notes"`
	Goals    *planner.GoalSet     `json:"goals"`
	Habits   *[]planner.Habit     `json:"habits"`
	Settings *planner.AppSettings `json:"settings"`
}

// Export assembles the current document and the dated filename the
// download should carry.
func (s *Service) Export() (*planner.Document, string) {
	doc := s.document()
	filename := fmt.Sprintf("planboard-backup-%s.json", s.today())
	return doc, filename
}

// Import parses a backup file and replaces each top-level key present in
// it, leaving missing keys untouched. A parse failure aborts the import
// with no mutation at all.
func (s *Service) Import(ctx context.Context, raw []byte) (*planner.Document, error) {
	var partial partialDocument
	if err := json.Unmarshal(raw, &partial); err != nil {
		s.log.Warn("rejecting unparseable backup file", "error", err)
		return nil, ErrInvalidBackup
	}

	doc := s.document()
	if partial.Notes != nil {
		doc.Notes = *partial.Notes
	}
	if partial.Goals != nil {
		doc.Goals = *partial.Goals
	}
	if partial.Habits != nil {
		doc.Habits = *partial.Habits
	}
	if partial.Settings != nil {
		doc.Settings = *partial.Settings
	}
	normalize(doc)

	if err := s.store.SaveDocument(ctx, doc); err != nil {
		s.log.Error(ErrPersistDocument.Error(), "error", err)
		return nil, ErrPersistDocument
	}
	s.reseed(doc)

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeDocumentImported})
	s.log.Info("imported backup",
		"notes", len(doc.Notes), "goals", len(doc.Goals.All()), "habits", len(doc.Habits))
	return doc, nil
}

// Clear resets every store to the default empty document.
func (s *Service) Clear(ctx context.Context) error {
	doc := planner.DefaultDocument()
	if err := s.store.SaveDocument(ctx, doc); err != nil {
		s.log.Error(ErrPersistDocument.Error(), "error", err)
		return ErrPersistDocument
	}
	s.reseed(doc)

	s.bus.Broadcast(ctx, events.Event{Type: events.TypeDocumentCleared})
	s.log.Info("cleared all data")
	return nil
}

// document assembles the live document from the stores.
func (s *Service) document() *planner.Document {
	return &planner.Document{
		Version:  planner.SchemaVersion,
		Notes:    s.notes.All(),
		Goals:    s.goals.Set(),
		Habits:   s.habits.All(),
		Settings: s.settings.Get(),
	}
}

// reseed pushes the new document into every store. The document was
// already persisted as a whole, so the per-store Reset paths skip their
// own flush.
func (s *Service) reseed(doc *planner.Document) {
	s.notes.Reset(doc.Notes)
	s.goals.Reset(doc.Goals)
	s.habits.Reset(doc.Habits)
	s.settings.Reset(doc.Settings)
}

// normalize fills nil inner collections on an imported document so the
// stores never hold nil slices.
func normalize(doc *planner.Document) {
	if doc.Notes == nil {
		doc.Notes = []planner.Note{}
	}
	if doc.Goals.Personal == nil {
		doc.Goals.Personal = []planner.Goal{}
	}
	if doc.Goals.Professional == nil {
		doc.Goals.Professional = []planner.Goal{}
	}
	if doc.Goals.Creative == nil {
		doc.Goals.Creative = []planner.Goal{}
	}
	if doc.Habits == nil {
		doc.Habits = []planner.Habit{}
	}
	for i := range doc.Habits {
		if doc.Habits[i].CompletedDates == nil {
			doc.Habits[i].CompletedDates = []planner.Day{}
		}
	}
	if doc.Settings.CustomCategories == nil {
		doc.Settings.CustomCategories = []string{}
	}
	def := planner.DefaultSettings()
	if doc.Settings.Theme == "" {
		doc.Settings.Theme = def.Theme
	}
	if doc.Settings.ColorScheme == "" {
		doc.Settings.ColorScheme = def.ColorScheme
	}
	if doc.Settings.View == "" {
		doc.Settings.View = def.View
	}
}
