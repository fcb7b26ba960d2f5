package goals

import "errors"

// ErrGoalNotFound - goal not found in its category list.
var ErrGoalNotFound = errors.New("goal not found")

// ErrUnknownCategory is returned for a category outside the fixed set.
var ErrUnknownCategory = errors.New("unknown goal category")

// ErrEmptyText is returned when a goal's text is empty after cleaning.
var ErrEmptyText = errors.New("goal text cannot be empty")

// ErrInvalidDeadline is returned when a deadline is not a calendar date.
var ErrInvalidDeadline = errors.New("invalid goal deadline")

// ErrPersistGoals is returned when flushing the goals key fails.
var ErrPersistGoals = errors.New("failed to persist goals")
