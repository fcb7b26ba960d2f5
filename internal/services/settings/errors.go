package settings

import "errors"

// ErrEmptyCategory is returned when a custom category label is empty
// after cleaning.
var ErrEmptyCategory = errors.New("category label cannot be empty")

// ErrPersistSettings is returned when flushing the settings key fails.
var ErrPersistSettings = errors.New("failed to persist settings")
