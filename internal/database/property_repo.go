package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"real-estate-listings/internal/models"
	"real-estate-listings/internal/queries"
)

// PropertyRepo is the MongoDB implementation of queries.PropertyRepository
type PropertyRepo struct {
	coll *mongo.Collection
}

// NewPropertyRepo creates a property repository over the configured collection
func NewPropertyRepo(db *DB) *PropertyRepo {
	return &PropertyRepo{coll: db.database.Collection(db.cfg.PropertiesCollection)}
}

// Search returns all properties matching the filter conjunction, sorted by
// name ascending
func (r *PropertyRepo) Search(ctx context.Context, filters queries.PropertyFilters) ([]models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, buildPropertyFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}

	return properties, nil
}

// GetByID returns the property with the given hex id, or (nil, nil) when no
// such property exists. An id that is not a valid object id cannot match any
// document, so it is treated as not found rather than as an error.
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var property models.Property
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &property, nil
}

// Create inserts a new property and fills in its generated id
func (r *PropertyRepo) Create(ctx context.Context, property *models.Property) error {
	result, err := r.coll.InsertOne(ctx, property)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		property.ID = oid
	}
	return nil
}

// Update replaces an existing property document, reporting whether a
// document was actually modified
func (r *PropertyRepo) Update(ctx context.Context, property *models.Property) (bool, error) {
	result, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: property.ID}}, property)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// Delete removes the property with the given hex id, reporting whether a
// document was actually deleted
func (r *PropertyRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
