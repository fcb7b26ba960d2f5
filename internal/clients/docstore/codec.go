package docstore

import (
	"encoding/json"

	"planboard/internal/planner"
)

// Encode serializes the document to its persisted JSON form.
func Encode(doc *planner.Document) ([]byte, error) {
	return json.Marshal(doc)
}

// Decode parses a persisted blob and migrates it to the current schema.
// Callers handle parse errors by falling back to the default document.
func Decode(raw []byte) (*planner.Document, error) {
	var doc planner.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	migrate(&doc)
	return &doc, nil
}

// migrate fills absent top-level keys with their defaults and stamps the
// current schema version. Version 0 blobs predate versioning; their only
// difference is the missing version field, so defaulting absent keys is
// the whole migration.
func migrate(doc *planner.Document) {
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
	if doc.Settings.CustomCategories == nil {
		doc.Settings.CustomCategories = []string{}
	}

	doc.Version = planner.SchemaVersion
}
