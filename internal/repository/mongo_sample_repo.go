package repository

import (
	"context"
	"time"

	"github.com/voiceguard/voice-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoSampleRepo struct {
	col *mongo.Collection
}

func NewMongoSampleRepo(db *mongo.Database, collection string) SampleRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "classification", Value: 1}},
	})
	return &mongoSampleRepo{col: col}
}

func (r *mongoSampleRepo) Create(ctx context.Context, s *models.AudioSample) error {
	if s.UploadedAt.IsZero() {
		s.UploadedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

func (r *mongoSampleRepo) CountByEmail(ctx context.Context, email string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"email": email})
}

func (r *mongoSampleRepo) CountByEmailAndClassification(ctx context.Context, email, classification string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"email": email, "classification": classification})
}
