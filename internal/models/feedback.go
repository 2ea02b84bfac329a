package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Classification labels produced by the external voice classifier.
const (
	ClassificationBonafide  = "bonafide"
	ClassificationSpoof     = "spoof"
	ClassificationNonSpeech = "Non speech"
)

// User verdicts on a classification result.
const (
	FeedbackCorrect   = "correct"
	FeedbackIncorrect = "incorrect"
)

// ValidClassification reports whether s is one of the three classifier labels.
func ValidClassification(s string) bool {
	switch s {
	case ClassificationBonafide, ClassificationSpoof, ClassificationNonSpeech:
		return true
	}
	return false
}

// ValidFeedback reports whether s is a recognized user verdict.
func ValidFeedback(s string) bool {
	return s == FeedbackCorrect || s == FeedbackIncorrect
}

// FeedbackEntry is a single classification-correction event. Entries are
// append-only: created once on submission and never updated or deleted by
// normal flows, including account deletion.
type FeedbackEntry struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email                  string             `bson:"email" json:"email"`
	FileName               string             `bson:"fileName" json:"fileName"`
	OriginalClassification string             `bson:"originalClassification" json:"originalClassification"`
	UserFeedback           string             `bson:"userFeedback" json:"userFeedback"`
	// CorrectClassification is set iff UserFeedback is "incorrect".
	CorrectClassification string    `bson:"correctClassification,omitempty" json:"correctClassification,omitempty"`
	Timestamp             time.Time `bson:"timestamp" json:"timestamp"`
}

// ClassificationStat is one bucket of the cross-user feedback aggregate,
// grouped by the classifier's original label.
type ClassificationStat struct {
	Classification string `bson:"_id" json:"classification"`
	Total          int64  `bson:"total" json:"total"`
	Correct        int64  `bson:"correct" json:"correct"`
	Incorrect      int64  `bson:"incorrect" json:"incorrect"`
}
