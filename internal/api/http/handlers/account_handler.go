package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MoniqueRon/esim-dashboard/internal/service"
)

// AccountHandler exposes account-level routes.
type AccountHandler struct {
	esims *service.ESIMService
}

// NewAccountHandler constructs handler.
func NewAccountHandler(esimService *service.ESIMService) *AccountHandler {
	return &AccountHandler{esims: esimService}
}

// Credit handles GET /account/credit.
func (h *AccountHandler) Credit(c *fiber.Ctx) error {
	result, err := h.esims.Credit(c.UserContext())
	if err != nil {
		return err
	}
	return sendResult(c, result)
}
