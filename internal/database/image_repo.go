package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"real-estate-listings/internal/models"
)

// PropertyImageRepo is the MongoDB implementation of
// queries.PropertyImageRepository. Images are read-only from the API's
// perspective and only enabled images are ever returned.
type PropertyImageRepo struct {
	coll *mongo.Collection
}

// NewPropertyImageRepo creates an image repository over the configured collection
func NewPropertyImageRepo(db *DB) *PropertyImageRepo {
	return &PropertyImageRepo{coll: db.database.Collection(db.cfg.PropertyImagesCollection)}
}

// enabledFilter matches enabled images of one property. Results are sorted
// by _id ascending so that "first image" is stable across calls.
func enabledFilter(propertyID primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "idProperty", Value: propertyID},
		{Key: "enabled", Value: true},
	}
}

// FirstEnabledByProperty returns the first enabled image of a property, or
// (nil, nil) when the property has none
func (r *PropertyImageRepo) FirstEnabledByProperty(ctx context.Context, propertyID string) (*models.PropertyImage, error) {
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	var image models.PropertyImage
	err = r.coll.FindOne(ctx, enabledFilter(oid), opts).Decode(&image)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &image, nil
}

// EnabledByProperty returns all enabled images of a property in stable order
func (r *PropertyImageRepo) EnabledByProperty(ctx context.Context, propertyID string) ([]models.PropertyImage, error) {
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return nil, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, enabledFilter(oid), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var images []models.PropertyImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}

	return images, nil
}
