package repository

import (
	"context"

	"github.com/voiceguard/voice-api/internal/models"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *models.FeedbackEntry) error
	// FindByEmail returns the user's entries newest-first, at most limit.
	FindByEmail(ctx context.Context, email string, limit int64) ([]models.FeedbackEntry, error)
	// FindAll returns every entry newest-first. Admin dashboard only.
	FindAll(ctx context.Context) ([]models.FeedbackEntry, error)
	AggregateByClassification(ctx context.Context) ([]models.ClassificationStat, error)
}
