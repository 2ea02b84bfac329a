package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/voiceguard/voice-api/internal/models"
	"github.com/voiceguard/voice-api/internal/repository"
	"go.uber.org/zap"
)

const (
	// listForUserLimit caps the per-user feedback listing.
	listForUserLimit = 100

	statsCacheKey = "feedback:stats"
	statsCacheTTL = 60 * time.Second
)

type feedbackService struct {
	repo repository.FeedbackRepository
	rdb  *redis.Client // nil disables the stats cache
	log  *zap.Logger
}

func NewFeedbackService(repo repository.FeedbackRepository, rdb *redis.Client, log *zap.Logger) FeedbackService {
	return &feedbackService{repo: repo, rdb: rdb, log: log}
}

func (s *feedbackService) Submit(ctx context.Context, email string, in SubmitFeedbackInput) (*models.FeedbackEntry, error) {
	if in.FileName == "" || in.OriginalClassification == "" || in.UserFeedback == "" {
		return nil, ErrMissingFields
	}
	if !models.ValidClassification(in.OriginalClassification) {
		return nil, ErrInvalidClassification
	}
	if !models.ValidFeedback(in.UserFeedback) {
		return nil, ErrInvalidFeedback
	}
	if in.UserFeedback == models.FeedbackIncorrect {
		if in.CorrectClassification == "" {
			return nil, ErrCorrectionRequired
		}
		if !models.ValidClassification(in.CorrectClassification) {
			return nil, ErrInvalidClassification
		}
	} else {
		// A confirmation carries no correction.
		in.CorrectClassification = ""
	}

	entry := &models.FeedbackEntry{
		Email:                  email,
		FileName:               in.FileName,
		OriginalClassification: in.OriginalClassification,
		UserFeedback:           in.UserFeedback,
		CorrectClassification:  in.CorrectClassification,
		Timestamp:              time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", ErrInternal)
	}

	s.invalidateStats(ctx)
	return entry, nil
}

func (s *feedbackService) ListForUser(ctx context.Context, email string) ([]models.FeedbackEntry, error) {
	entries, err := s.repo.FindByEmail(ctx, email, listForUserLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", ErrInternal)
	}
	return entries, nil
}

func (s *feedbackService) ListAll(ctx context.Context) ([]models.FeedbackEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", ErrInternal)
	}
	return entries, nil
}

// Stats returns the per-label aggregate, served from Redis when a cached
// copy is fresh. Cache failures fall through to Mongo.
func (s *feedbackService) Stats(ctx context.Context) ([]models.ClassificationStat, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var stats []models.ClassificationStat
			if err := json.Unmarshal(cached, &stats); err == nil {
				return stats, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("feedback stats cache read failed", zap.Error(err))
		}
	}

	stats, err := s.repo.AggregateByClassification(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate feedback: %w", ErrInternal)
	}

	if s.rdb != nil {
		if b, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, b, statsCacheTTL).Err(); err != nil {
				s.log.Warn("feedback stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *feedbackService) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, statsCacheKey).Err(); err != nil {
		s.log.Warn("feedback stats cache invalidation failed", zap.Error(err))
	}
}
