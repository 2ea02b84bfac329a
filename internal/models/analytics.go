package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsRecord holds per-user usage counters. It is a derived view over
// the audiosamples collection: every stats read recomputes the counters from
// the samples, so a stored record is never authoritative on its own.
// One record per user, keyed by email.
type AnalyticsRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email           string             `bson:"email" json:"email"`
	TotalSamples    int64              `bson:"totalSamples" json:"totalSamples"`
	HumanVoiceCount int64              `bson:"humanVoiceCount" json:"humanVoiceCount"`
	AIVoiceCount    int64              `bson:"aiVoiceCount" json:"aiVoiceCount"`
	LastUpdated     time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
