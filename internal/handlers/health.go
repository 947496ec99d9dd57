package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports whether the database pool can serve queries.
type HealthHandler struct {
	ping func(ctx context.Context) error
	log  *zap.Logger
}

// NewHealthHandler constructs HealthHandler around a ping function.
func NewHealthHandler(ping func(ctx context.Context) error, log *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

// Check answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
