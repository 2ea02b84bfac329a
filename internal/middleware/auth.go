package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/voiceguard/voice-api/internal/models"
	"github.com/voiceguard/voice-api/internal/repository"
	"github.com/voiceguard/voice-api/internal/utils"
	"go.uber.org/zap"
)

// UserKey is the Locals key under which Protect stores the resolved user.
const UserKey = "user"

// Protect resolves the bearer token to a full user record before any
// protected handler runs. A token whose account has since been deleted is
// rejected, same as a bad or expired one.
func Protect(jwtMgr *utils.JWTManager, userRepo repository.UserRepository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "not authorized to access this route")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "not authorized to access this route")
		}

		email, err := jwtMgr.ParseAccess(parts[1])
		if err != nil {
			log.Debug("token rejected", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "not authorized to access this route")
		}

		user, err := userRepo.FindByEmail(c.Context(), email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "user not found")
			}
			log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

// AdminOnly gates cross-user reads on the admin role. Must run after Protect.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "you do not have permission to access this resource")
		}
		return c.Next()
	}
}

// CurrentUser returns the user Protect stored on the request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(UserKey).(*models.User)
	return u
}
