package repository

import (
	"context"

	"github.com/voiceguard/voice-api/internal/models"
)

type AnalyticsRepository interface {
	// Create inserts a zeroed record for a new user. A duplicate insert
	// (record already present) is not an error.
	Create(ctx context.Context, rec *models.AnalyticsRecord) error
	// Upsert overwrites the counters for rec.Email, inserting if absent.
	Upsert(ctx context.Context, rec *models.AnalyticsRecord) error
	DeleteByEmail(ctx context.Context, email string) error
}
