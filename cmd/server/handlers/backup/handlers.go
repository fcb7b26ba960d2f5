package backup

import (
	"context"

	"planboard/cmd/server/handlers/handlerutil"
	"planboard/internal/planner"
	backupService "planboard/internal/services/backup"

	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for document-level operations
type Service interface {
	Export() (*planner.Document, string)
	Import(ctx context.Context, raw []byte) (*planner.Document, error)
	Clear(ctx context.Context) error
}

// Handlers contains the backup HTTP handlers
type Handlers struct {
	service Service
}

// NewHandlers creates new backup handlers
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// Export handles backup download
// @Summary Export the full document as a dated backup file
// @Tags backup
// @Produce json
// @Success 200 {object} planner.Document
// @Router /backup/export [get]
func (h *Handlers) Export(c *fiber.Ctx) error {
	doc, filename := h.service.Export()
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(doc)
}

// Import handles backup restore
// @Summary Import a backup file; keys present in the file replace the stored ones
// @Tags backup
// @Accept json
// @Produce json
// @Success 200 {object} planner.Document
// @Failure 400 {object} httperr.E
// @Router /backup/import [post]
func (h *Handlers) Import(c *fiber.Ctx) error {
	doc, err := h.service.Import(c.Context(), c.Body())
	if err != nil {
		return handlerutil.HandleServiceError(err, "Import", nil, backupService.ErrInvalidBackup)
	}
	return c.JSON(doc)
}

// Clear handles the clear-all-data action
// @Summary Reset every store to the default empty document
// @Tags backup
// @Success 204
// @Router /backup/clear [post]
func (h *Handlers) Clear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context()); err != nil {
		return handlerutil.HandleServiceError(err, "Clear", nil)
	}
	return c.SendStatus(204)
}
