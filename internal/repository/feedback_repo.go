package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"toyland-backend/internal/database"
	"toyland-backend/internal/models"
)

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo(db *database.Client) *FeedbackRepo {
	return &FeedbackRepo{
		collection: db.Collection(database.FeedbacksCollection),
	}
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) (_ *models.InsertResult, err error) {
	defer observe(database.FeedbacksCollection, "insert", &err)()

	feedback.ID = bson.NilObjectID
	feedback.CreatedAt = time.Now().UTC()
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return nil, err
	}
	feedback.ID = result.InsertedID.(bson.ObjectID)
	return &models.InsertResult{Acknowledged: result.Acknowledged, InsertedID: feedback.ID}, nil
}

// List returns all feedback, newest first.
func (r *FeedbackRepo) List(ctx context.Context) (feedback []models.Feedback, err error) {
	defer observe(database.FeedbacksCollection, "find", &err)()

	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	feedback = []models.Feedback{}
	if err = cursor.All(ctx, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// EnsureIndexes creates necessary indexes for the feedbacks collection
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: newestFirst,
	})
	return err
}
