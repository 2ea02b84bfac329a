package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voiceguard/voice-api/internal/middleware"
)

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	tokens, err := h.authSvc.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"message":      "User registered successfully",
		"token":        tokens.Token,
		"refreshToken": tokens.RefreshToken,
		"user":         tokens.User,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	tokens, err := h.authSvc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Login successful",
		"token":        tokens.Token,
		"refreshToken": tokens.RefreshToken,
		"user":         tokens.User,
	})
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) Refresh(c *fiber.Ctx) error {
	var req refreshReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	tokens, err := h.authSvc.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"token":        tokens.Token,
		"refreshToken": tokens.RefreshToken,
	})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"user":    middleware.CurrentUser(c),
	})
}

// Logout acknowledges the call and nothing more. Tokens are stateless, so
// the client discarding its copy is the whole logout; the token itself
// stays valid until expiry.
func (h *Handler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}
