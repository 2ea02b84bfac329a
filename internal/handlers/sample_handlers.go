package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voiceguard/voice-api/internal/middleware"
	"github.com/voiceguard/voice-api/internal/services"
)

type recordSampleReq struct {
	Filename        string  `json:"filename"`
	FileURL         string  `json:"fileUrl"`
	FileSize        int64   `json:"fileSize"`
	Classification  string  `json:"classification"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

func (h *Handler) RecordSample(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	var req recordSampleReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	sample, err := h.sampleSvc.Record(c.Context(), user.Email, services.RecordSampleInput{
		Filename:        req.Filename,
		FileURL:         req.FileURL,
		FileSize:        req.FileSize,
		Classification:  req.Classification,
		ConfidenceScore: req.ConfidenceScore,
	})
	if err != nil {
		return httpError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    sample,
	})
}
