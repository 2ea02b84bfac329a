package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voiceguard/voice-api/internal/middleware"
)

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"user":    middleware.CurrentUser(c),
	})
}

type updateProfileReq struct {
	Username string `json:"username"`
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	var req updateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	updated, err := h.userSvc.UpdateUsername(c.Context(), user.ID.Hex(), req.Username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

func (h *Handler) GetUserStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	rec, err := h.userSvc.GetStats(c.Context(), user.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(fiber.Map{
		"totalSamples":    rec.TotalSamples,
		"humanVoiceCount": rec.HumanVoiceCount,
		"aiVoiceCount":    rec.AIVoiceCount,
		"lastUpdated":     rec.LastUpdated,
	})
}

func (h *Handler) DeleteAccount(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.userSvc.DeleteAccount(c.Context(), user.ID.Hex(), user.Email); err != nil {
		return httpError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Account deleted successfully",
	})
}
