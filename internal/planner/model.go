// Package planner defines the persisted data model shared by every store:
// notes, goals, habits and settings, aggregated into a single Document.
package planner

// SchemaVersion is the current version of the persisted document layout.
// Version 0 (absent field) predates versioning; loading migrates it forward
// by defaulting absent keys.
const SchemaVersion = 1

// NoteCategory classifies a note.
type NoteCategory string

const (
	CategoryPersonal NoteCategory = "personal"
	CategoryWork     NoteCategory = "work"
	CategoryHealth   NoteCategory = "health"
	CategoryOther    NoteCategory = "other"
)

// Priority orders notes within a day: high before medium before low.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the sort weight of a priority (lower sorts first).
// Unknown values rank after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Note is a dated annotation on the calendar.
type Note struct {
	ID         string       `json:"id" example:"01JX3MEBA9Q2V8E0FY5TPW4Z6M"`
	Date       Day          `json:"date" validate:"required" example:"2025-06-01"`
	Text       string       `json:"text" validate:"required" example:"Dentist at noon"`
	Category   NoteCategory `json:"category" example:"health"`
	Priority   Priority     `json:"priority" example:"high"`
	TimeSlot   string       `json:"timeSlot,omitempty" example:"09:00"`
	IsTemplate bool         `json:"isTemplate,omitempty"`
}

// GoalCategory is one of the three fixed goal groupings. Distinct from
// NoteCategory, which tags individual notes.
type GoalCategory string

const (
	GoalPersonal     GoalCategory = "personal"
	GoalProfessional GoalCategory = "professional"
	GoalCreative     GoalCategory = "creative"
)

// GoalCategories lists the fixed category set in display order.
var GoalCategories = []GoalCategory{GoalPersonal, GoalProfessional, GoalCreative}

// Goal is a tracked objective within one of the fixed categories.
// IDs are monotonically increasing across all categories combined.
type Goal struct {
	ID                int    `json:"id" example:"3"`
	Text              string `json:"text" example:"Run a 10k"`
	Completed         bool   `json:"completed"`
	Progress          int    `json:"progress" example:"40"`
	Deadline          Day    `json:"deadline,omitempty" example:"2025-09-01"`
	Streak            int    `json:"streak"`
	LastCompletedDate Day    `json:"lastCompletedDate,omitempty"`
}

// GoalSet partitions goals by their fixed categories.
type GoalSet struct {
	Personal     []Goal `json:"personal"`
	Professional []Goal `json:"professional"`
	Creative     []Goal `json:"creative"`
}

// List returns the slice holding the given category, or nil for an
// unknown category.
func (g *GoalSet) List(cat GoalCategory) *[]Goal {
	switch cat {
	case GoalPersonal:
		return &g.Personal
	case GoalProfessional:
		return &g.Professional
	case GoalCreative:
		return &g.Creative
	}
	return nil
}

// All flattens every category into a single slice.
func (g *GoalSet) All() []Goal {
	out := make([]Goal, 0, len(g.Personal)+len(g.Professional)+len(g.Creative))
	out = append(out, g.Personal...)
	out = append(out, g.Professional...)
	out = append(out, g.Creative...)
	return out
}

// MaxID returns the maximum goal id across all categories, 0 if none exist.
func (g *GoalSet) MaxID() int {
	max := 0
	for _, goal := range g.All() {
		if goal.ID > max {
			max = goal.ID
		}
	}
	return max
}

// Habit is a recurring daily tracker. CompletedDates is a duplicate-free
// set of days kept in toggle order.
type Habit struct {
	ID             string `json:"id"`
	Name           string `json:"name" example:"Meditate"`
	Category       string `json:"category" example:"health"`
	CompletedDates []Day  `json:"completedDates"`
	Streak         int    `json:"streak"`
	Color          string `json:"color" example:"#60A5FA"`
}

// CompletedOn reports whether the habit was completed on the given day.
func (h *Habit) CompletedOn(d Day) bool {
	for _, c := range h.CompletedDates {
		if c == d {
			return true
		}
	}
	return false
}

// HabitPalette is the fixed set of display colors new habits draw from.
var HabitPalette = []string{
	"#F87171", "#60A5FA", "#4ADE80", "#FACC15",
	"#C084FC", "#F472B6", "#818CF8", "#FB923C",
}

// Theme is the UI light/dark mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ColorScheme is the UI accent color.
type ColorScheme string

const (
	SchemeBlue   ColorScheme = "blue"
	SchemeGreen  ColorScheme = "green"
	SchemePurple ColorScheme = "purple"
	SchemeOrange ColorScheme = "orange"
)

// View is the default calendar view.
type View string

const (
	ViewYear  View = "year"
	ViewMonth View = "month"
	ViewWeek  View = "week"
)

// AppSettings holds presentation and configuration state.
type AppSettings struct {
	Theme            Theme       `json:"theme" example:"light"`
	ColorScheme      ColorScheme `json:"colorScheme" example:"blue"`
	View             View        `json:"view" example:"year"`
	CustomCategories []string    `json:"customCategories"`
}

// Document is the single durable aggregate. Every store is a transient
// cache rehydrated from it at startup and flushed back after each mutation.
type Document struct {
	Version  int         `json:"version"`
	Notes    []Note      `json:"notes"`
	Goals    GoalSet     `json:"goals"`
	Habits   []Habit     `json:"habits"`
	Settings AppSettings `json:"settings"`
}

// Clone returns a deep copy of the document so callers can mutate their
// copy without racing the cached one.
func (d *Document) Clone() *Document {
	out := &Document{
		Version:  d.Version,
		Notes:    append([]Note{}, d.Notes...),
		Habits:   make([]Habit, len(d.Habits)),
		Settings: d.Settings,
	}
	out.Goals = GoalSet{
		Personal:     append([]Goal{}, d.Goals.Personal...),
		Professional: append([]Goal{}, d.Goals.Professional...),
		Creative:     append([]Goal{}, d.Goals.Creative...),
	}
	for i, h := range d.Habits {
		h.CompletedDates = append([]Day{}, h.CompletedDates...)
		out.Habits[i] = h
	}
	out.Settings.CustomCategories = append([]string{}, d.Settings.CustomCategories...)
	return out
}

// DefaultSettings returns the fixed settings defaults.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:            ThemeLight,
		ColorScheme:      SchemeBlue,
		View:             ViewYear,
		CustomCategories: []string{},
	}
}

// DefaultDocument returns a fully-populated empty document.
func DefaultDocument() *Document {
	return &Document{
		Version: SchemaVersion,
		Notes:   []Note{},
		Goals: GoalSet{
			Personal:     []Goal{},
			Professional: []Goal{},
			Creative:     []Goal{},
		},
		Habits:   []Habit{},
		Settings: DefaultSettings(),
	}
}
