package settings

import (
	"context"

	"planboard/cmd/server/handlers/handlerutil"
	"planboard/internal/planner"
	settingsService "planboard/internal/services/settings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for the settings store
type Service interface {
	Get() planner.AppSettings
	Update(ctx context.Context, req settingsService.UpdateSettingsRequest) (planner.AppSettings, error)
	AddCustomCategory(ctx context.Context, label string) (planner.AppSettings, error)
	RemoveCustomCategory(ctx context.Context, label string) (planner.AppSettings, error)
}

// Handlers contains the settings HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new settings handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// Get handles settings retrieval
// @Summary Get current settings
// @Tags settings
// @Produce json
// @Success 200 {object} settings.SettingsResponse
// @Router /settings [get]
func (h *Handlers) Get(c *fiber.Ctx) error {
	return c.JSON(settingsService.SettingsResponse{Settings: h.service.Get()})
}

// Update handles partial settings updates
// @Summary Update settings (shallow merge of provided fields)
// @Tags settings
// @Accept json
// @Produce json
// @Param request body settings.UpdateSettingsRequest true "Update settings request"
// @Success 200 {object} settings.SettingsResponse
// @Failure 400 {object} httperr.E
// @Router /settings [patch]
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req settingsService.UpdateSettingsRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Update"); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Context(), req)
	if err != nil {
		return handlerutil.HandleServiceError(err, "Update", nil)
	}

	return c.JSON(settingsService.SettingsResponse{Settings: updated})
}

// AddCategory handles custom category creation
// @Summary Add a custom category label
// @Tags settings
// @Accept json
// @Produce json
// @Param request body settings.CategoryRequest true "Category request"
// @Success 200 {object} settings.SettingsResponse
// @Failure 400 {object} httperr.E
// @Router /settings/categories [post]
func (h *Handlers) AddCategory(c *fiber.Ctx) error {
	var req settingsService.CategoryRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "AddCategory"); err != nil {
		return err
	}

	updated, err := h.service.AddCustomCategory(c.Context(), req.Label)
	if err != nil {
		return handlerutil.HandleServiceError(err, "AddCategory", nil, settingsService.ErrEmptyCategory)
	}

	return c.JSON(settingsService.SettingsResponse{Settings: updated})
}

// RemoveCategory handles custom category removal
// @Summary Remove a custom category label (idempotent)
// @Tags settings
// @Accept json
// @Produce json
// @Param request body settings.CategoryRequest true "Category request"
// @Success 200 {object} settings.SettingsResponse
// @Failure 400 {object} httperr.E
// @Router /settings/categories [delete]
func (h *Handlers) RemoveCategory(c *fiber.Ctx) error {
	var req settingsService.CategoryRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "RemoveCategory"); err != nil {
		return err
	}

	updated, err := h.service.RemoveCustomCategory(c.Context(), req.Label)
	if err != nil {
		return handlerutil.HandleServiceError(err, "RemoveCategory", nil)
	}

	return c.JSON(settingsService.SettingsResponse{Settings: updated})
}
