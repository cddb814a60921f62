package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// Pinger lo implementan los almacenes (embedded.DB, pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health responde 200 si el almacén responde, 503 si no.
func Health(service string, store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if store != nil {
			if err := store.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Service: service})
			}
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Service: service})
	}
}
