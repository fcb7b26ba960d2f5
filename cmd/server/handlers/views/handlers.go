package views

import (
	"time"

	"planboard/cmd/server/handlers/httperr"
	"planboard/internal/planner"
	viewsService "planboard/internal/services/views"

	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for view projections
type Service interface {
	Year(year int) viewsService.YearView
	Month(year, month int) viewsService.MonthView
	Week(date planner.Day) viewsService.WeekView
	Stats() viewsService.StatsView
}

// Handlers contains the read-only view handlers
type Handlers struct {
	service Service
}

// NewHandlers creates new view handlers
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// Year handles the year grid
// @Summary Year calendar grid with per-day activity counts
// @Tags views
// @Produce json
// @Param year query int false "Year (default current)"
// @Success 200 {object} views.YearView
// @Failure 400 {object} httperr.E
// @Router /views/year [get]
func (h *Handlers) Year(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	if year < 1 || year > 9999 {
		return httperr.Fail(httperr.E{Status: 400, Message: "invalid year"})
	}
	return c.JSON(h.service.Year(year))
}

// Month handles the month grid
// @Summary Sunday-aligned month grid
// @Tags views
// @Produce json
// @Param year query int false "Year (default current)"
// @Param month query int false "Month 1-12 (default current)"
// @Success 200 {object} views.MonthView
// @Failure 400 {object} httperr.E
// @Router /views/month [get]
func (h *Handlers) Month(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return httperr.Fail(httperr.E{Status: 400, Message: "invalid year or month"})
	}
	return c.JSON(h.service.Month(year, month))
}

// Week handles the week grid
// @Summary Week view with ordered notes and habit completion
// @Tags views
// @Produce json
// @Param date query string false "Any date inside the week (default today)"
// @Success 200 {object} views.WeekView
// @Failure 400 {object} httperr.E
// @Router /views/week [get]
func (h *Handlers) Week(c *fiber.Ctx) error {
	date := planner.Today()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := planner.ParseDay(dateStr)
		if err != nil {
			return httperr.Fail(httperr.E{Status: 400, Message: "invalid date"})
		}
		date = parsed
	}
	return c.JSON(h.service.Week(date))
}

// Stats handles the stats dashboard
// @Summary Aggregate statistics over notes, goals and habits
// @Tags views
// @Produce json
// @Success 200 {object} views.StatsView
// @Router /views/stats [get]
func (h *Handlers) Stats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}
