package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MoniqueRon/esim-dashboard/internal/nexuce"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	session     *nexuce.Session
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, session *nexuce.Session) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, session: session}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. The provider session state is informational: the
// service serves (degraded) traffic without it, so it never fails the probe.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	providerSession := "absent"
	if h.session.Active() {
		providerSession = "established"
	}

	return c.JSON(fiber.Map{
		"status": "ready",
		"dependencies": fiber.Map{
			"provider_session": providerSession,
		},
	})
}
