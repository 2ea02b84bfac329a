package repository

import (
	"context"
	"time"

	"github.com/voiceguard/voice-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoFeedbackRepo struct {
	col *mongo.Collection
}

func NewMongoFeedbackRepo(db *mongo.Database, collection string) FeedbackRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return &mongoFeedbackRepo{col: col}
}

func (r *mongoFeedbackRepo) Create(ctx context.Context, f *models.FeedbackEntry) error {
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		f.ID = oid
	}
	return nil
}

func (r *mongoFeedbackRepo) FindByEmail(ctx context.Context, email string, limit int64) ([]models.FeedbackEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []models.FeedbackEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoFeedbackRepo) FindAll(ctx context.Context) ([]models.FeedbackEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []models.FeedbackEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AggregateByClassification groups all entries by the classifier's original
// label and counts how often users confirmed or contradicted it.
func (r *mongoFeedbackRepo) AggregateByClassification(ctx context.Context) ([]models.ClassificationStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$originalClassification",
			"total": bson.M{"$sum": 1},
			"correct": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$userFeedback", models.FeedbackCorrect}}, 1, 0},
			}},
			"incorrect": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$userFeedback", models.FeedbackIncorrect}}, 1, 0},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stats := []models.ClassificationStat{}
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
