package handlers

import (
	"context"
	"time"

	"planboard/internal/clients/docstore"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const HealthzTimeout = 5 * time.Second

// Healthz returns the health of the server. With the file driver there is
// no backing service to probe; with the mongo driver the database is pinged.
// @Summary Health check
// @Description Check if the server and its storage are healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
func Healthz(c *fiber.Ctx) error {
	db := docstore.MongoDB()
	if db == nil {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), HealthzTimeout)
	defer cancel()

	if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "down",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
