package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MoniqueRon/esim-dashboard/internal/api/dto"
	"github.com/MoniqueRon/esim-dashboard/internal/service"
	apperrors "github.com/MoniqueRon/esim-dashboard/pkg/util"
)

// AuthHandler exposes the operator login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, _, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
