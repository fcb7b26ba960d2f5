// Package docs Planboard API
//
// @title  Planboard API
// @version 0.1.0
// @description Personal planning calendar: notes, goals, habits, and backups.
// @host      localhost:8080
// @BasePath /api/v1
// @schemes http https
package docs

import (
	_ "planboard/cmd/server/handlers/httperr"
	_ "planboard/internal/services/backup"
	_ "planboard/internal/services/notes"
)
