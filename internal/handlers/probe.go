package handlers

import (
	"github.com/gofiber/fiber/v3"

	"campuslinks/internal/store"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	kv store.KV
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(kv store.KV) *ProbeHandler {
	return &ProbeHandler{kv: kv}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the storage backend is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if _, err := h.kv.Get(c.Context(), "healthcheck"); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "storage unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
