package habits

import (
	"context"

	"planboard/cmd/server/handlers/handlerutil"
	"planboard/cmd/server/handlers/httperr"
	"planboard/internal/planner"
	habitsService "planboard/internal/services/habits"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for the habit store
type Service interface {
	Add(ctx context.Context, req habitsService.AddHabitRequest) (*planner.Habit, error)
	Delete(ctx context.Context, id string) error
	ToggleDate(ctx context.Context, id string, date planner.Day) (*planner.Habit, error)
	ByDate(date planner.Day) []habitsService.HabitStatus
	All() []planner.Habit
}

// Handlers contains the habits HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new habits handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// toggleDateRequest carries the date being toggled; an empty body means
// today, matching the tracker's one-click toggle.
type toggleDateRequest struct {
	Date string `json:"date" validate:"omitempty" example:"2025-06-01"`
}

// List handles habit listing, with per-date completion when filtered
// @Summary List habits, annotated with completion for a date if given
// @Tags habits
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} habits.HabitsResponse
// @Failure 400 {object} httperr.E
// @Router /habits [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return c.JSON(habitsService.HabitsResponse{Habits: h.service.All()})
	}

	date, err := planner.ParseDay(dateStr)
	if err != nil {
		return httperr.Fail(httperr.E{Status: 400, Message: "invalid date"})
	}

	return c.JSON(fiber.Map{"habits": h.service.ByDate(date)})
}

// Add handles habit creation
// @Summary Add a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param request body habits.AddHabitRequest true "Add habit request"
// @Success 201 {object} habits.HabitResponse
// @Failure 400 {object} httperr.E
// @Router /habits [post]
func (h *Handlers) Add(c *fiber.Ctx) error {
	var req habitsService.AddHabitRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Add"); err != nil {
		return err
	}

	habit, err := h.service.Add(c.Context(), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Add", nil, habitsService.ErrEmptyName)
	}

	return c.Status(201).JSON(habitsService.HabitResponse{Habit: habit})
}

// Toggle handles per-date completion toggling
// @Summary Toggle a habit's completion for a date (default today)
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body object false "Toggle request with optional date"
// @Success 200 {object} habits.HabitResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /habits/{id}/toggle [post]
func (h *Handlers) Toggle(c *fiber.Ctx) error {
	var req toggleDateRequest
	if len(c.Body()) > 0 {
		if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Toggle"); err != nil {
			return err
		}
	}

	date := planner.Day(req.Date)
	if req.Date == "" {
		date = planner.Today()
	}

	habit, err := h.service.ToggleDate(c.Context(), c.Params("id"), date)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Toggle", habitsService.ErrHabitNotFound,
			habitsService.ErrInvalidDate)
	}

	return c.JSON(habitsService.HabitResponse{Habit: habit})
}

// Delete handles habit deletion
// @Summary Delete a habit (idempotent)
// @Tags habits
// @Param id path string true "Habit ID"
// @Success 204
// @Router /habits/{id} [delete]
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return handlerutil.HandleServiceError(err, "Delete", nil)
	}
	return c.SendStatus(204)
}
