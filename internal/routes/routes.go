package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voiceguard/voice-api/internal/handlers"
	"github.com/voiceguard/voice-api/internal/middleware"
	"github.com/voiceguard/voice-api/internal/repository"
	"github.com/voiceguard/voice-api/internal/utils"
	"go.uber.org/zap"
)

func Setup(app *fiber.App, h *handlers.Handler, jwtMgr *utils.JWTManager, userRepo repository.UserRepository, log *zap.Logger) {
	protect := middleware.Protect(jwtMgr, userRepo, log)
	adminOnly := middleware.AdminOnly()

	app.Get("/health", h.Health)

	auth := app.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Get("/me", protect, h.Me)
	auth.Post("/logout", protect, h.Logout)

	users := app.Group("/users", protect)
	users.Get("/profile", h.GetProfile)
	users.Put("/profile", h.UpdateProfile)
	users.Get("/stats", h.GetUserStats)
	users.Delete("/account", h.DeleteAccount)

	app.Post("/samples", protect, h.RecordSample)

	feedback := app.Group("/feedback", protect)
	feedback.Post("/", h.SubmitFeedback)
	feedback.Get("/my-feedback", h.GetMyFeedback)
	feedback.Get("/stats", h.GetFeedbackStats)
	feedback.Get("/all", adminOnly, h.GetAllFeedback)
}
