package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/voiceguard/voice-api/internal/models"
	"github.com/voiceguard/voice-api/internal/repository"
	"github.com/voiceguard/voice-api/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo      repository.UserRepository
	analyticsRepo repository.AnalyticsRepository
	jwtMgr        *utils.JWTManager
	adminEmail    string
	hashCost      int
	log           *zap.Logger
}

// NewAuthService creates the authentication service. adminEmail designates
// the single account that receives the admin role at registration.
func NewAuthService(
	userRepo repository.UserRepository,
	analyticsRepo repository.AnalyticsRepository,
	jwtMgr *utils.JWTManager,
	adminEmail string,
	hashCost int,
	log *zap.Logger,
) AuthService {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
		jwtMgr:        jwtMgr,
		adminEmail:    adminEmail,
		hashCost:      hashCost,
		log:           log,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*AuthTokens, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !utils.IsValidPassword(password) {
		return nil, ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", ErrInternal)
	}

	role := models.RoleUser
	if s.adminEmail != "" && email == s.adminEmail {
		role = models.RoleAdmin
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	// The unique indexes arbitrate concurrent registrations; the repository
	// reports which field collided.
	if err := s.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", ErrInternal)
	}

	// Seed a zeroed analytics record; the stats read path recomputes it.
	if err := s.analyticsRepo.Create(ctx, &models.AnalyticsRecord{Email: user.Email}); err != nil {
		s.log.Warn("failed to create analytics record", zap.String("email", user.Email), zap.Error(err))
	}

	return s.issueTokens(user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthTokens, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password; do not reveal which failed.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", ErrInternal)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	email, err := s.jwtMgr.ParseRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// Reject tokens of accounts deleted since issuing.
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *models.User) (*AuthTokens, error) {
	access, _, err := s.jwtMgr.GenerateAccessToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", ErrInternal)
	}
	refresh, _, err := s.jwtMgr.GenerateRefreshToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", ErrInternal)
	}
	return &AuthTokens{Token: access, RefreshToken: refresh, User: user}, nil
}
