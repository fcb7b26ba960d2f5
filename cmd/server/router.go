package main

import (
	"context"
	"time"

	"planboard/cmd/server/handlers"
	backupHandlers "planboard/cmd/server/handlers/backup"
	eventsHandlers "planboard/cmd/server/handlers/events"
	goalsHandlers "planboard/cmd/server/handlers/goals"
	habitsHandlers "planboard/cmd/server/handlers/habits"
	"planboard/cmd/server/handlers/httperr"
	notesHandlers "planboard/cmd/server/handlers/notes"
	settingsHandlers "planboard/cmd/server/handlers/settings"
	viewsHandlers "planboard/cmd/server/handlers/views"
	"planboard/cmd/server/middlewares"
	"planboard/internal/clients/docstore"
	"planboard/internal/config"
	"planboard/internal/logger"
	"planboard/internal/planner"
	backupServices "planboard/internal/services/backup"
	eventsServices "planboard/internal/services/events"
	goalsServices "planboard/internal/services/goals"
	habitsServices "planboard/internal/services/habits"
	notesServices "planboard/internal/services/notes"
	settingsServices "planboard/internal/services/settings"
	viewsServices "planboard/internal/services/views"

	_ "planboard/docs" // Load swagger docs

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const (
	RateLimitExpiration = 1 * time.Minute
)

// setupRouter configures and returns a Fiber app with all routes
func setupRouter(ctx context.Context, cfg config.Config, store *docstore.Store) *fiber.App {
	v := validator.New()

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
	}))

	hub := eventsServices.NewHub(cfg.WSOutboxBuffer)

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app, hub)
	}

	// Health check endpoint, outside versioned API to appease scanners and to avoid logging
	app.Get("/healthz", handlers.Healthz)

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Static("/", "./web-ui", fiber.Static{
		Browse: false,
		Index:  "index.html",
	})

	var v1 fiber.Router
	if cfg.RequestLoggingEnabled {
		v1 = app.Group("/api/v1", fiberlogger.New())
		logger.L().Info("request logging enabled")
	} else {
		v1 = app.Group("/api/v1")
		logger.L().Info("request logging disabled")
	}

	// The stores are transient caches over the persisted document; the
	// load path seeds all of them at startup.
	doc := store.Load(ctx)

	notesSvc := notesServices.NewService(doc.Notes, store, hub, logger.L())
	goalsSvc := goalsServices.NewService(doc.Goals, store, hub, logger.L())
	habitsSvc := habitsServices.NewService(doc.Habits, store, hub, logger.L())
	settingsSvc := settingsServices.NewService(doc.Settings, store, hub, logger.L())
	settingsSvc.Subscribe(func(s planner.AppSettings) {
		logger.L().Info("settings changed", "theme", s.Theme, "color_scheme", s.ColorScheme, "view", s.View)
	})
	backupSvc := backupServices.NewService(notesSvc, goalsSvc, habitsSvc, settingsSvc, store, hub, logger.L())
	viewsSvc := viewsServices.NewService(notesSvc, goalsSvc, habitsSvc)

	// Notes routes
	notesH := notesHandlers.NewHandlers(notesSvc, v)
	notesGrp := v1.Group("/notes")
	notesGrp.Post("/", notesH.Create)
	notesGrp.Get("/", notesH.List)
	notesGrp.Get("/search", notesH.Search)
	notesGrp.Patch("/:id", notesH.Update)
	notesGrp.Delete("/:id", notesH.Delete)

	// Goals routes
	goalsH := goalsHandlers.NewHandlers(goalsSvc, v)
	goalsGrp := v1.Group("/goals")
	goalsGrp.Get("/", goalsH.List)
	goalsGrp.Post("/:category", goalsH.Add)
	goalsGrp.Post("/:category/:id/toggle", goalsH.Toggle)
	goalsGrp.Put("/:category/:id/progress", goalsH.SetProgress)

	// Habits routes
	habitsH := habitsHandlers.NewHandlers(habitsSvc, v)
	habitsGrp := v1.Group("/habits")
	habitsGrp.Get("/", habitsH.List)
	habitsGrp.Post("/", habitsH.Add)
	habitsGrp.Post("/:id/toggle", habitsH.Toggle)
	habitsGrp.Delete("/:id", habitsH.Delete)

	// Settings routes
	settingsH := settingsHandlers.NewHandlers(settingsSvc, v)
	settingsGrp := v1.Group("/settings")
	settingsGrp.Get("/", settingsH.Get)
	settingsGrp.Patch("/", settingsH.Update)
	settingsGrp.Post("/categories", settingsH.AddCategory)
	settingsGrp.Delete("/categories", settingsH.RemoveCategory)

	// View routes
	viewsH := viewsHandlers.NewHandlers(viewsSvc)
	viewsGrp := v1.Group("/views")
	viewsGrp.Get("/year", viewsH.Year)
	viewsGrp.Get("/month", viewsH.Month)
	viewsGrp.Get("/week", viewsH.Week)
	viewsGrp.Get("/stats", viewsH.Stats)

	// Backup routes; import parses whole documents, so it gets a limiter
	importLimiter := limiter.New(limiter.Config{
		Max:        cfg.ImportRatePerMin,
		Expiration: RateLimitExpiration,
		LimitReached: func(c *fiber.Ctx) error {
			return httperr.Fail(httperr.ErrTooManyRequests)
		},
	})
	backupH := backupHandlers.NewHandlers(backupSvc)
	backupGrp := v1.Group("/backup")
	backupGrp.Get("/export", backupH.Export)
	backupGrp.Post("/import", importLimiter, backupH.Import)
	backupGrp.Post("/clear", backupH.Clear)

	// WebSocket routes
	wsHandlers := eventsHandlers.NewWebSocketHandlers(hub, cfg.WSMaxSessionSec)
	app.Get("/ws/events", wsHandlers.WSUpgrade, websocket.New(wsHandlers.WSEventStream))

	return app
}
