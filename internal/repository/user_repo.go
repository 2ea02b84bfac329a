package repository

import (
	"context"
	"errors"

	"github.com/voiceguard/voice-api/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrDuplicateUsername = errors.New("username already taken")
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUsername(ctx context.Context, id, username string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
