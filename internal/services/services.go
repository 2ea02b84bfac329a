package services

import (
	"context"
	"errors"

	"github.com/voiceguard/voice-api/internal/models"
)

var (
	ErrMissingFields         = errors.New("please provide all required fields")
	ErrInvalidEmail          = errors.New("email is not valid")
	ErrWeakPassword          = errors.New("password must be at least 6 characters long")
	ErrEmailTaken            = errors.New("email already in use")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidRefreshToken   = errors.New("invalid or expired refresh token")
	ErrInvalidClassification = errors.New("invalid classification label")
	ErrInvalidFeedback       = errors.New("feedback must be correct or incorrect")
	ErrInvalidConfidence     = errors.New("confidence score must be between 0 and 1")
	ErrCorrectionRequired    = errors.New("correct classification is required for incorrect feedback")
	ErrInternal              = errors.New("internal server error")
)

// AuthTokens is the credential pair returned by register, login and refresh.
// The refresh token is a distinct credential (longer expiry, refresh
// audience); only the access token is accepted by the request gate.
type AuthTokens struct {
	Token        string
	RefreshToken string
	User         *models.User
}

// AuthService covers account creation and session issuing.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthTokens, error)
	Login(ctx context.Context, email, password string) (*AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
}

// UserService covers profile management and the derived usage analytics.
type UserService interface {
	UpdateUsername(ctx context.Context, userID, username string) (*models.User, error)
	// GetStats recomputes the user's counters from the samples collection,
	// persists them and returns the fresh record. Safe to call repeatedly.
	GetStats(ctx context.Context, email string) (*models.AnalyticsRecord, error)
	// DeleteAccount removes the user and their analytics record. Feedback
	// entries are retained deliberately.
	DeleteAccount(ctx context.Context, userID, email string) error
}

// SubmitFeedbackInput is the validated payload of a feedback submission.
type SubmitFeedbackInput struct {
	FileName               string
	OriginalClassification string
	UserFeedback           string
	CorrectClassification  string
}

// FeedbackService is the append-only ledger of classification corrections.
type FeedbackService interface {
	Submit(ctx context.Context, email string, in SubmitFeedbackInput) (*models.FeedbackEntry, error)
	ListForUser(ctx context.Context, email string) ([]models.FeedbackEntry, error)
	ListAll(ctx context.Context) ([]models.FeedbackEntry, error)
	Stats(ctx context.Context) ([]models.ClassificationStat, error)
}

// RecordSampleInput describes one classified recording to persist.
type RecordSampleInput struct {
	Filename        string
	FileURL         string
	FileSize        int64
	Classification  string
	ConfidenceScore float64
}

// SampleService records classified samples, the source the analytics
// counters derive from.
type SampleService interface {
	Record(ctx context.Context, email string, in RecordSampleInput) (*models.AudioSample, error)
}
