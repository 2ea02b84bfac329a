package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voiceguard/voice-api/internal/middleware"
	"github.com/voiceguard/voice-api/internal/services"
)

type submitFeedbackReq struct {
	FileName               string `json:"fileName"`
	OriginalClassification string `json:"originalClassification"`
	UserFeedback           string `json:"userFeedback"`
	CorrectClassification  string `json:"correctClassification"`
}

func (h *Handler) SubmitFeedback(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	var req submitFeedbackReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	entry, err := h.feedbackSvc.Submit(c.Context(), user.Email, services.SubmitFeedbackInput{
		FileName:               req.FileName,
		OriginalClassification: req.OriginalClassification,
		UserFeedback:           req.UserFeedback,
		CorrectClassification:  req.CorrectClassification,
	})
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Feedback submitted successfully",
		"data":    entry,
	})
}

func (h *Handler) GetMyFeedback(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	entries, err := h.feedbackSvc.ListForUser(c.Context(), user.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(entries),
		"data":    entries,
	})
}

func (h *Handler) GetFeedbackStats(c *fiber.Ctx) error {
	stats, err := h.feedbackSvc.Stats(c.Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func (h *Handler) GetAllFeedback(c *fiber.Ctx) error {
	entries, err := h.feedbackSvc.ListAll(c.Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(entries),
		"data":    entries,
	})
}
