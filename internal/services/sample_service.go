package services

import (
	"context"
	"fmt"
	"time"

	"github.com/voiceguard/voice-api/internal/models"
	"github.com/voiceguard/voice-api/internal/repository"
)

type sampleService struct {
	repo repository.SampleRepository
}

func NewSampleService(repo repository.SampleRepository) SampleService {
	return &sampleService{repo: repo}
}

// Record inserts a classified sample. Analytics are not touched here: the
// stats read path recounts the collection, so the write stays a single
// document insert.
func (s *sampleService) Record(ctx context.Context, email string, in RecordSampleInput) (*models.AudioSample, error) {
	if in.Filename == "" || in.FileURL == "" {
		return nil, ErrMissingFields
	}
	if in.Classification == "" {
		in.Classification = models.SampleUnclassified
	}
	if !models.ValidSampleClassification(in.Classification) {
		return nil, ErrInvalidClassification
	}
	if in.ConfidenceScore < 0 || in.ConfidenceScore > 1 {
		return nil, ErrInvalidConfidence
	}

	sample := &models.AudioSample{
		Email:           email,
		Filename:        in.Filename,
		FileURL:         in.FileURL,
		FileSize:        in.FileSize,
		Classification:  in.Classification,
		ConfidenceScore: in.ConfidenceScore,
		UploadedAt:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sample); err != nil {
		return nil, fmt.Errorf("failed to store sample: %w", ErrInternal)
	}
	return sample, nil
}
