package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"toyland-backend/internal/config"
	"toyland-backend/internal/logging"
)

const (
	CategoriesCollection = "categories"
	ToysCollection       = "allToys"
	FeedbacksCollection  = "feedbacks"
)

// Client owns the MongoDB connection pool for the lifetime of the process.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and pings the primary before returning.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.ConnectionString()).
		SetAppName("toyland-backend").
		SetConnectTimeout(cfg.ConnectTimeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if cfg.StableAPI {
		clientOpts.SetServerAPIOptions(
			options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true),
		)
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	logging.Info().Str("database", cfg.Name).Msg("connected to MongoDB")
	return &Client{client: client, db: client.Database(cfg.Name)}, nil
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping reports whether the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close drains the pool. The client must not be used afterwards.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
