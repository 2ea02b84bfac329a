package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voiceguard/voice-api/internal/models"
	"github.com/voiceguard/voice-api/internal/repository"
	"go.uber.org/zap"
)

type userService struct {
	userRepo      repository.UserRepository
	analyticsRepo repository.AnalyticsRepository
	sampleRepo    repository.SampleRepository
	log           *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	analyticsRepo repository.AnalyticsRepository,
	sampleRepo repository.SampleRepository,
	log *zap.Logger,
) UserService {
	return &userService{
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
		sampleRepo:    sampleRepo,
		log:           log,
	}
}

func (s *userService) UpdateUsername(ctx context.Context, userID, username string) (*models.User, error) {
	if username == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.UpdateUsername(ctx, userID, username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update username: %w", ErrInternal)
	}
	return user, nil
}

// GetStats recounts the user's samples and overwrites the stored record.
// Counters are therefore never stale on the read path, whatever happened
// on the write path.
func (s *userService) GetStats(ctx context.Context, email string) (*models.AnalyticsRecord, error) {
	total, err := s.sampleRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count samples: %w", ErrInternal)
	}
	human, err := s.sampleRepo.CountByEmailAndClassification(ctx, email, models.SampleHuman)
	if err != nil {
		return nil, fmt.Errorf("failed to count human samples: %w", ErrInternal)
	}
	ai, err := s.sampleRepo.CountByEmailAndClassification(ctx, email, models.SampleAI)
	if err != nil {
		return nil, fmt.Errorf("failed to count ai samples: %w", ErrInternal)
	}

	rec := &models.AnalyticsRecord{
		Email:           email,
		TotalSamples:    total,
		HumanVoiceCount: human,
		AIVoiceCount:    ai,
		LastUpdated:     time.Now().UTC(),
	}
	if err := s.analyticsRepo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to persist analytics: %w", ErrInternal)
	}
	return rec, nil
}

// DeleteAccount removes the user and their analytics record but leaves
// feedback entries in place: corrections are kept for product analytics
// after the account is gone.
func (s *userService) DeleteAccount(ctx context.Context, userID, email string) error {
	if err := s.analyticsRepo.DeleteByEmail(ctx, email); err != nil {
		s.log.Warn("failed to delete analytics record", zap.String("email", email), zap.Error(err))
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", ErrInternal)
	}
	return nil
}
