package backup

import "errors"

// ErrInvalidBackup is returned when an import file does not parse; the
// import aborts with no partial mutation.
var ErrInvalidBackup = errors.New("invalid backup file")

// ErrPersistDocument is returned when flushing the whole document fails.
var ErrPersistDocument = errors.New("failed to persist document")
