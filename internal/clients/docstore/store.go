package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"planboard/internal/config"
	"planboard/internal/planner"
)

// Store is the storage codec for the planner document. It caches the
// last-loaded document and exposes an explicit per-key save contract:
// each SaveX replaces exactly one top-level key over the cached document
// and writes the whole blob back. Partial documents are never merged
// implicitly, which keeps a caller from clobbering keys it never touched.
type Store struct {
	mu   sync.Mutex
	blob Blob
	log  *slog.Logger
	doc  *planner.Document
}

// NewStore creates a store over the given blob driver.
func NewStore(blob Blob, log *slog.Logger) *Store {
	return &Store{blob: blob, log: log}
}

// Open builds a store for the configured driver. For the mongo driver the
// connection singleton must have been initialized first.
func Open(cfg config.Config, log *slog.Logger) (*Store, error) {
	switch cfg.StorageDriver {
	case config.DriverFile:
		return NewStore(NewFileBlob(cfg.DataFile), log), nil
	case config.DriverMongo:
		db := MongoDB()
		if db == nil {
			return nil, fmt.Errorf("mongo driver selected but connection not initialized")
		}
		return NewStore(NewMongoBlob(db), log), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// Load returns a copy of the persisted document. Absence or a parse
// failure falls back to the default empty document and never surfaces an
// error to the caller; a corrupt blob is logged and left in place until
// the next save overwrites it.
func (s *Store) Load(ctx context.Context) *planner.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx).Clone()
}

func (s *Store) loadLocked(ctx context.Context) *planner.Document {
	if s.doc != nil {
		return s.doc
	}

	raw, err := s.blob.Load(ctx)
	if err != nil {
		if err != ErrNotFound {
			s.log.Warn("failed to load document blob, using defaults", "err", err)
		}
		s.doc = planner.DefaultDocument()
		return s.doc
	}

	doc, err := Decode(raw)
	if err != nil {
		s.log.Warn("failed to parse document blob, using defaults", "err", err)
		s.doc = planner.DefaultDocument()
		return s.doc
	}

	s.doc = doc
	return s.doc
}

// SaveNotes replaces the notes key and persists the document.
func (s *Store) SaveNotes(ctx context.Context, notes []planner.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadLocked(ctx)
	doc.Notes = append([]planner.Note{}, notes...)
	return s.flushLocked(ctx)
}

// SaveGoals replaces the goals key and persists the document.
func (s *Store) SaveGoals(ctx context.Context, goals planner.GoalSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadLocked(ctx)
	doc.Goals = planner.GoalSet{
		Personal:     append([]planner.Goal{}, goals.Personal...),
		Professional: append([]planner.Goal{}, goals.Professional...),
		Creative:     append([]planner.Goal{}, goals.Creative...),
	}
	return s.flushLocked(ctx)
}

// SaveHabits replaces the habits key and persists the document.
func (s *Store) SaveHabits(ctx context.Context, habits []planner.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadLocked(ctx)
	doc.Habits = make([]planner.Habit, len(habits))
	for i, h := range habits {
		h.CompletedDates = append([]planner.Day{}, h.CompletedDates...)
		doc.Habits[i] = h
	}
	return s.flushLocked(ctx)
}

// SaveSettings replaces the settings key and persists the document.
func (s *Store) SaveSettings(ctx context.Context, settings planner.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadLocked(ctx)
	settings.CustomCategories = append([]string{}, settings.CustomCategories...)
	doc.Settings = settings
	return s.flushLocked(ctx)
}

// SaveDocument replaces every key at once (import and clear paths).
func (s *Store) SaveDocument(ctx context.Context, doc *planner.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	s.doc = doc.Clone()
	return s.flushLocked(ctx)
}

func (s *Store) flushLocked(ctx context.Context) error {
	s.doc.Version = planner.SchemaVersion

	raw, err := Encode(s.doc)
	if err != nil {
		s.log.Error("failed to encode document", "err", err)
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.blob.Save(ctx, raw); err != nil {
		s.log.Error("failed to save document blob", "err", err)
		return fmt.Errorf("save document blob: %w", err)
	}
	return nil
}
