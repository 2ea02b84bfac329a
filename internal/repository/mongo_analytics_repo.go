package repository

import (
	"context"
	"errors"
	"time"

	"github.com/voiceguard/voice-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAnalyticsRepo struct {
	col *mongo.Collection
}

func NewMongoAnalyticsRepo(db *mongo.Database, collection string) AnalyticsRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &mongoAnalyticsRepo{col: col}
}

func (r *mongoAnalyticsRepo) Create(ctx context.Context, rec *models.AnalyticsRecord) error {
	if rec.LastUpdated.IsZero() {
		rec.LastUpdated = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, rec)
	if err != nil {
		// Already having a record is fine; counters are overwritten on read.
		var we mongo.WriteException
		if errors.As(err, &we) && we.HasErrorCode(11000) {
			return nil
		}
		return err
	}
	return nil
}

func (r *mongoAnalyticsRepo) Upsert(ctx context.Context, rec *models.AnalyticsRecord) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"email": rec.Email},
		bson.M{"$set": bson.M{
			"totalSamples":    rec.TotalSamples,
			"humanVoiceCount": rec.HumanVoiceCount,
			"aiVoiceCount":    rec.AIVoiceCount,
			"lastUpdated":     rec.LastUpdated,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *mongoAnalyticsRepo) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"email": email})
	return err
}
