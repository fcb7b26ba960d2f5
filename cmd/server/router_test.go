package main

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"planboard/cmd/server/testutil"
	"planboard/internal/clients/docstore"
	"planboard/internal/config"
	"planboard/internal/logger"
	notesService "planboard/internal/services/notes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		LogLevel:            "debug",
		LogFormat:           "text",
		StorageDriver:       config.DriverFile,
		DataFile:            filepath.Join(t.TempDir(), "planboard.json"),
		ImportRatePerMin:    5,
		WSMaxSessionSec:     900,
		WSOutboxBuffer:      16,
		RouteMetricsEnabled: true,
	}

	log, err := logger.Init(cfg)
	require.NoError(t, err)

	store := docstore.NewStore(docstore.NewFileBlob(cfg.DataFile), log)
	return setupRouter(context.Background(), cfg, store)
}

func TestRouterHealthz(t *testing.T) {
	app := setupTestRouter(t)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRouterMetricsEndpoint(t *testing.T) {
	app := setupTestRouter(t)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRouterNoteRoundTrip(t *testing.T) {
	app := setupTestRouter(t)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPost, "/api/v1/notes",
		map[string]string{"text": "book flights", "date": "2025-06-10"}))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created notesService.NoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotNil(t, created.Note)
	assert.NotEmpty(t, created.Note.ID)

	resp, err = app.Test(testutil.CreateJSONRequest(http.MethodGet, "/api/v1/notes?date=2025-06-10", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var listed notesService.NotesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed.Notes, 1)
	assert.Equal(t, created.Note.ID, listed.Notes[0].ID)
}

func TestRouterExportSetsFilename(t *testing.T) {
	app := setupTestRouter(t)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, "/api/v1/backup/export", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "planboard-backup-")
}

func TestRouterImportRateLimit(t *testing.T) {
	app := setupTestRouter(t)

	body := map[string]any{"notes": []any{}}
	for i := 0; i < 5; i++ {
		resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPost, "/api/v1/backup/import", body))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodPost, "/api/v1/backup/import", body))
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
}

func TestRouterUnknownAPIRoute(t *testing.T) {
	app := setupTestRouter(t)

	resp, err := app.Test(testutil.CreateJSONRequest(http.MethodGet, "/api/v1/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
