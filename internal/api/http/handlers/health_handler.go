package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/toy-store/internal/observability"
)

// HealthHandler exposes liveness, readiness and counter probes.
type HealthHandler struct {
	ready   func(ctx context.Context) error
	metrics *observability.Metrics
}

// NewHealthHandler constructs handler. A nil readiness check always reports
// ready (in-memory mode).
func NewHealthHandler(ready func(ctx context.Context) error, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{ready: ready, metrics: metrics}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.ready != nil {
		if err := h.ready(c.Context()); err != nil {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Metrics handles GET /health/metrics.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
