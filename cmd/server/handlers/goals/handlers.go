package goals

import (
	"context"

	"planboard/cmd/server/handlers/handlerutil"
	"planboard/cmd/server/handlers/httperr"
	"planboard/internal/planner"
	goalsService "planboard/internal/services/goals"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for the goal store
type Service interface {
	Add(ctx context.Context, cat planner.GoalCategory, req goalsService.AddGoalRequest) (*planner.Goal, error)
	Toggle(ctx context.Context, cat planner.GoalCategory, id int) (*planner.Goal, error)
	SetProgress(ctx context.Context, cat planner.GoalCategory, id, value int) (*planner.Goal, error)
	Set() planner.GoalSet
}

// Handlers contains the goals HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new goals handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// List handles the full goal set
// @Summary Get all goals grouped by category
// @Tags goals
// @Produce json
// @Success 200 {object} goals.GoalsResponse
// @Router /goals [get]
func (h *Handlers) List(c *fiber.Ctx) error {
	return c.JSON(goalsService.GoalsResponse{Goals: h.service.Set()})
}

// Add handles goal creation
// @Summary Add a goal to one of the fixed categories
// @Tags goals
// @Accept json
// @Produce json
// @Param category path string true "Goal category" Enums(personal, professional, creative)
// @Param request body goals.AddGoalRequest true "Add goal request"
// @Success 201 {object} goals.GoalResponse
// @Failure 400 {object} httperr.E
// @Router /goals/{category} [post]
func (h *Handlers) Add(c *fiber.Ctx) error {
	var req goalsService.AddGoalRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Add"); err != nil {
		return err
	}

	goal, err := h.service.Add(c.Context(), planner.GoalCategory(c.Params("category")), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Add", nil,
			goalsService.ErrUnknownCategory, goalsService.ErrEmptyText, goalsService.ErrInvalidDeadline)
	}

	return c.Status(201).JSON(goalsService.GoalResponse{Goal: goal})
}

// Toggle handles goal completion toggling
// @Summary Toggle a goal's completion
// @Tags goals
// @Produce json
// @Param category path string true "Goal category" Enums(personal, professional, creative)
// @Param id path int true "Goal ID"
// @Success 200 {object} goals.GoalResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /goals/{category}/{id}/toggle [post]
func (h *Handlers) Toggle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return httperr.Fail(httperr.E{Status: 400, Message: "invalid goal id"})
	}

	goal, err := h.service.Toggle(c.Context(), planner.GoalCategory(c.Params("category")), id)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Toggle", goalsService.ErrGoalNotFound,
			goalsService.ErrUnknownCategory)
	}

	return c.JSON(goalsService.GoalResponse{Goal: goal})
}

// SetProgress handles direct progress updates
// @Summary Set a goal's progress (clamped to 0-100)
// @Tags goals
// @Accept json
// @Produce json
// @Param category path string true "Goal category" Enums(personal, professional, creative)
// @Param id path int true "Goal ID"
// @Param request body goals.SetProgressRequest true "Progress request"
// @Success 200 {object} goals.GoalResponse
// @Failure 400 {object} httperr.E
// @Failure 404 {object} httperr.E
// @Router /goals/{category}/{id}/progress [put]
func (h *Handlers) SetProgress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return httperr.Fail(httperr.E{Status: 400, Message: "invalid goal id"})
	}

	var req goalsService.SetProgressRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "SetProgress"); err != nil {
		return err
	}

	goal, err := h.service.SetProgress(c.Context(), planner.GoalCategory(c.Params("category")), id, req.Progress)
	if err != nil {
		return handlerutil.HandleServiceError(err, "SetProgress", goalsService.ErrGoalNotFound,
			goalsService.ErrUnknownCategory)
	}

	return c.JSON(goalsService.GoalResponse{Goal: goal})
}
