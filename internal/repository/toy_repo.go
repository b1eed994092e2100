package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"toyland-backend/internal/database"
	"toyland-backend/internal/models"
)

type ToyRepo struct {
	collection *mongo.Collection
}

func NewToyRepo(db *database.Client) *ToyRepo {
	return &ToyRepo{
		collection: db.Collection(database.ToysCollection),
	}
}

// List returns one page of listings, newest first, optionally filtered by category.
func (r *ToyRepo) List(ctx context.Context, page models.ToyPage) (_ []models.Toy, err error) {
	defer observe(database.ToysCollection, "find", &err)()

	filter := bson.M{}
	if page.Category != "" {
		filter["category"] = page.Category
	}
	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(page.Skip()).
		SetLimit(page.Limit)

	return r.find(ctx, filter, opts)
}

// SearchByName matches text as a literal, case-insensitive substring of toyName.
func (r *ToyRepo) SearchByName(ctx context.Context, text string) (_ []models.Toy, err error) {
	defer observe(database.ToysCollection, "search", &err)()

	filter := bson.M{"toyName": bson.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}}
	return r.find(ctx, filter)
}

func (r *ToyRepo) FindByOwner(ctx context.Context, email string) (_ []models.Toy, err error) {
	defer observe(database.ToysCollection, "find_by_owner", &err)()

	return r.find(ctx, bson.M{"postedBy": email})
}

// FindByID returns nil, nil when no listing has the id.
func (r *ToyRepo) FindByID(ctx context.Context, id bson.ObjectID) (_ *models.Toy, err error) {
	defer observe(database.ToysCollection, "find_one", &err)()

	var toy models.Toy
	err = r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&toy)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &toy, nil
}

// EstimatedCount reads the collection metadata count; it ignores any filter.
func (r *ToyRepo) EstimatedCount(ctx context.Context) (n int64, err error) {
	defer observe(database.ToysCollection, "estimated_count", &err)()

	return r.collection.EstimatedDocumentCount(ctx)
}

// Create stamps CreatedAt and inserts the listing.
func (r *ToyRepo) Create(ctx context.Context, toy *models.Toy) (_ *models.InsertResult, err error) {
	defer observe(database.ToysCollection, "insert", &err)()

	toy.ID = bson.NilObjectID
	toy.CreatedAt = time.Now().UTC()
	result, err := r.collection.InsertOne(ctx, toy)
	if err != nil {
		return nil, err
	}
	toy.ID = result.InsertedID.(bson.ObjectID)
	return &models.InsertResult{Acknowledged: result.Acknowledged, InsertedID: toy.ID}, nil
}

// Upsert overwrites the editable fields of id, creating the document when it does not exist.
func (r *ToyRepo) Upsert(ctx context.Context, id bson.ObjectID, update models.ToyUpdate) (_ *models.UpdateResult, err error) {
	defer observe(database.ToysCollection, "upsert", &err)()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	out := &models.UpdateResult{
		Acknowledged:  result.Acknowledged,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if upserted, ok := result.UpsertedID.(bson.ObjectID); ok {
		out.UpsertedID = &upserted
	}
	return out, nil
}

func (r *ToyRepo) Delete(ctx context.Context, id bson.ObjectID) (_ *models.DeleteResult, err error) {
	defer observe(database.ToysCollection, "delete", &err)()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: result.Acknowledged, DeletedCount: result.DeletedCount}, nil
}

// EnsureIndexes creates the indexes used by the listing queries.
func (r *ToyRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: newestFirst},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createAt", Value: -1}}},
		{Keys: bson.D{{Key: "postedBy", Value: 1}}},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ToyRepo) find(ctx context.Context, filter interface{}, opts ...options.Lister[options.FindOptions]) ([]models.Toy, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	toys := []models.Toy{}
	if err := cursor.All(ctx, &toys); err != nil {
		return nil, err
	}
	return toys, nil
}
