package notes

import (
	"context"

	"planboard/cmd/server/handlers/handlerutil"
	"planboard/cmd/server/handlers/httperr"
	"planboard/internal/planner"
	notesService "planboard/internal/services/notes"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for the note store
type Service interface {
	Create(ctx context.Context, req notesService.CreateNoteRequest) (*planner.Note, error)
	Update(ctx context.Context, id string, req notesService.UpdateNoteRequest) (*planner.Note, error)
	Delete(ctx context.Context, id string) error
	ByDate(date planner.Day) []planner.Note
	Search(term string) []planner.Note
	All() []planner.Note
}

// Handlers contains the notes HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new notes handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// Create handles note creation
// @Summary Create a new note
// @Tags notes
// @Accept json
// @Produce json
// @Param request body notes.CreateNoteRequest true "Create note request"
// @Success 201 {object} notes.NoteResponse
// @Failure 400 {object} httperr.E
// @Router /notes [post]
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req notesService.CreateNoteRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Create"); err != nil {
		return err
	}

	note, err := h.service.Create(c.Context(), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Create", nil,
			notesService.ErrEmptyText, notesService.ErrInvalidDate, notesService.ErrInvalidTimeSlot)
	}

	return c.Status(201).JSON(notesService.NoteResponse{Note: note})
}

// List handles notes listing, optionally filtered to a single date
// @Summary List notes, in display order when filtered by date
// @Tags notes
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} notes.NotesResponse
// @Failure 400 {object} httperr.E
// @Router /notes [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		all := h.service.All()
		return c.JSON(notesService.NotesResponse{Notes: all, Total: len(all)})
	}

	date, err := planner.ParseDay(dateStr)
	if err != nil {
		return httperr.Fail(httperr.E{Status: 400, Message: "invalid date"})
	}

	byDate := h.service.ByDate(date)
	return c.JSON(notesService.NotesResponse{Notes: byDate, Total: len(byDate)})
}

// Search handles note search
// @Summary Search notes by text or category, case-insensitively
// @Tags notes
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} notes.NotesResponse
// @Router /notes/search [get]
func (h *Handlers) Search(c *fiber.Ctx) error {
	found := h.service.Search(c.Query("q"))
	return c.JSON(notesService.NotesResponse{Notes: found, Total: len(found)})
}

// Update handles partial note updates
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param request body notes.UpdateNoteRequest true "Update note request"
// @Success 200 {object} notes.NoteResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /notes/{id} [patch]
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req notesService.UpdateNoteRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Update"); err != nil {
		return err
	}

	note, err := h.service.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Update", notesService.ErrNoteNotFound,
			notesService.ErrEmptyText, notesService.ErrInvalidDate, notesService.ErrInvalidTimeSlot)
	}

	return c.JSON(notesService.NoteResponse{Note: note})
}

// Delete handles note deletion
// @Summary Delete a note (idempotent)
// @Tags notes
// @Param id path string true "Note ID"
// @Success 204
// @Router /notes/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return handlerutil.HandleServiceError(err, "Delete", nil)
	}
	return c.SendStatus(204)
}
