package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"toyland-backend/internal/models"
)

// Lookups return nil, nil when the document does not exist.

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Category, error)
}

type ToyStore interface {
	List(ctx context.Context, page models.ToyPage) ([]models.Toy, error)
	SearchByName(ctx context.Context, text string) ([]models.Toy, error)
	FindByOwner(ctx context.Context, email string) ([]models.Toy, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Toy, error)
	EstimatedCount(ctx context.Context) (int64, error)
	Create(ctx context.Context, toy *models.Toy) (*models.InsertResult, error)
	Upsert(ctx context.Context, id bson.ObjectID, update models.ToyUpdate) (*models.UpdateResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (*models.DeleteResult, error)
}

type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) (*models.InsertResult, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
