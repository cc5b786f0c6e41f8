package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"real-estate-listings/internal/config"
)

// DB wraps a MongoDB connection and the collection names it serves
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	cfg      config.MongoConfig
}

// Connect opens a MongoDB connection and verifies it with a ping
func Connect(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
		cfg:      cfg,
	}, nil
}

// Close disconnects the underlying client
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// Collection returns a raw collection handle by name. Used by the seed
// importer for collections that have no repository of their own.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// EnsureIndexes creates the indexes the listing and image queries rely on
func (db *DB) EnsureIndexes(ctx context.Context) error {
	properties := db.database.Collection(db.cfg.PropertiesCollection)
	_, err := properties.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "address", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create property indexes: %w", err)
	}

	images := db.database.Collection(db.cfg.PropertyImagesCollection)
	_, err = images.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "idProperty", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create property image index: %w", err)
	}

	return nil
}
