package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MoniqueRon/esim-dashboard/internal/service"
)

// dataSourceHeader tells the frontend whether it got live provider data or
// the degraded-mode fallback; the status code is 200 either way.
const dataSourceHeader = "X-Data-Source"

// ESIMsHandler exposes the eSIM dashboard routes.
type ESIMsHandler struct {
	esims *service.ESIMService
}

// NewESIMsHandler constructs handler.
func NewESIMsHandler(esimService *service.ESIMService) *ESIMsHandler {
	return &ESIMsHandler{esims: esimService}
}

// List handles GET /esims.
func (h *ESIMsHandler) List(c *fiber.Ctx) error {
	result, err := h.esims.List(c.UserContext())
	if err != nil {
		return err
	}
	return sendResult(c, result)
}

// Detail handles GET /esims/:id.
func (h *ESIMsHandler) Detail(c *fiber.Ctx) error {
	result, err := h.esims.Detail(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return sendResult(c, result)
}

// Location handles GET /esims/:id/location.
func (h *ESIMsHandler) Location(c *fiber.Ctx) error {
	result, err := h.esims.Location(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return sendResult(c, result)
}

// Usage handles GET /esims/:id/usage with optional start_date/end_date.
func (h *ESIMsHandler) Usage(c *fiber.Ctx) error {
	result, err := h.esims.Usage(c.UserContext(), c.Params("id"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return err
	}
	return sendResult(c, result)
}

// Activate handles POST /esims/:id/activate.
func (h *ESIMsHandler) Activate(c *fiber.Ctx) error {
	result, err := h.esims.Activate(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return sendResult(c, result)
}

// Suspend handles POST /esims/:id/suspend.
func (h *ESIMsHandler) Suspend(c *fiber.Ctx) error {
	result, err := h.esims.Suspend(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return sendResult(c, result)
}

// sendResult writes a proxied body verbatim, tagging its origin.
func sendResult(c *fiber.Ctx, result service.Result) error {
	c.Set(dataSourceHeader, string(result.Origin))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(result.Body)
}
