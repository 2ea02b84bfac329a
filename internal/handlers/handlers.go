package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/voiceguard/voice-api/internal/services"
	"go.uber.org/zap"
)

// Handler bundles the HTTP shells over the service layer. Handlers stay
// thin: parse the body, call the service, shape the JSON.
type Handler struct {
	authSvc     services.AuthService
	userSvc     services.UserService
	feedbackSvc services.FeedbackService
	sampleSvc   services.SampleService
	log         *zap.Logger
}

func NewHandler(
	authSvc services.AuthService,
	userSvc services.UserService,
	feedbackSvc services.FeedbackService,
	sampleSvc services.SampleService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		authSvc:     authSvc,
		userSvc:     userSvc,
		feedbackSvc: feedbackSvc,
		sampleSvc:   sampleSvc,
		log:         log,
	}
}

// httpError maps service errors onto fiber errors; the app's ErrorHandler
// renders them as {success:false, message}.
func httpError(err error) error {
	switch {
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrInvalidClassification),
		errors.Is(err, services.ErrInvalidFeedback),
		errors.Is(err, services.ErrInvalidConfidence),
		errors.Is(err, services.ErrCorrectionRequired):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
}

// ErrorHandler is the app-level responder: every error surfaces as a single
// {success:false, message} body with the mapped status. No partial successes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
