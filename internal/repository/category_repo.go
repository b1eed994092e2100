package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"toyland-backend/internal/database"
	"toyland-backend/internal/models"
)

type CategoryRepo struct {
	collection *mongo.Collection
}

func NewCategoryRepo(db *database.Client) *CategoryRepo {
	return &CategoryRepo{
		collection: db.Collection(database.CategoriesCollection),
	}
}

// List returns every category in natural order.
func (r *CategoryRepo) List(ctx context.Context) (categories []models.Category, err error) {
	defer observe(database.CategoriesCollection, "find", &err)()

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	categories = []models.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID returns nil, nil when no category has the id.
func (r *CategoryRepo) FindByID(ctx context.Context, id bson.ObjectID) (_ *models.Category, err error) {
	defer observe(database.CategoriesCollection, "find_one", &err)()

	var category models.Category
	err = r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
