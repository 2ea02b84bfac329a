package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sample classifications as recorded client-side after the external
// classifier responds. These are coarser than the feedback labels:
// bonafide maps to human, spoof to ai.
const (
	SampleHuman        = "human"
	SampleAI           = "ai"
	SampleUnclassified = "unclassified"
)

// ValidSampleClassification reports whether s is a recognized sample label.
func ValidSampleClassification(s string) bool {
	switch s {
	case SampleHuman, SampleAI, SampleUnclassified:
		return true
	}
	return false
}

// AudioSample records one classified recording for a user. The analytics
// counters are derived from this collection.
type AudioSample struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	Filename        string             `bson:"filename" json:"filename"`
	FileURL         string             `bson:"fileUrl" json:"fileUrl"`
	FileSize        int64              `bson:"fileSize,omitempty" json:"fileSize,omitempty"`
	Classification  string             `bson:"classification" json:"classification"`
	ConfidenceScore float64            `bson:"confidenceScore,omitempty" json:"confidenceScore,omitempty"`
	UploadedAt      time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
