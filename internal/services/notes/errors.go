package notes

import "errors"

// ErrNoteNotFound - note not found in the store.
var ErrNoteNotFound = errors.New("note not found")

// ErrEmptyText is returned when a note's text is empty after cleaning.
var ErrEmptyText = errors.New("note text cannot be empty")

// ErrInvalidDate is returned when a note's date is not a calendar date.
var ErrInvalidDate = errors.New("invalid note date")

// ErrInvalidTimeSlot is returned when a note's time slot is not HH:MM.
var ErrInvalidTimeSlot = errors.New("invalid time slot")

// ErrPersistNotes is returned when flushing the notes key fails.
var ErrPersistNotes = errors.New("failed to persist notes")
