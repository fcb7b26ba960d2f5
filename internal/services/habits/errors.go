package habits

import "errors"

// ErrHabitNotFound - habit not found in the store.
var ErrHabitNotFound = errors.New("habit not found")

// ErrEmptyName is returned when a habit's name is empty after cleaning.
var ErrEmptyName = errors.New("habit name cannot be empty")

// ErrInvalidDate is returned when a toggled date is not a calendar date.
var ErrInvalidDate = errors.New("invalid habit date")

// ErrPersistHabits is returned when flushing the habits key fails.
var ErrPersistHabits = errors.New("failed to persist habits")
