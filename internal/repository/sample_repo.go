package repository

import (
	"context"

	"github.com/voiceguard/voice-api/internal/models"
)

type SampleRepository interface {
	Create(ctx context.Context, s *models.AudioSample) error
	CountByEmail(ctx context.Context, email string) (int64, error)
	CountByEmailAndClassification(ctx context.Context, email, classification string) (int64, error)
}
