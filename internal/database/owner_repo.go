package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"real-estate-listings/internal/models"
)

// OwnerRepo is the MongoDB implementation of queries.OwnerRepository.
// Owners are read-only from the API's perspective.
type OwnerRepo struct {
	coll *mongo.Collection
}

// NewOwnerRepo creates an owner repository over the configured collection
func NewOwnerRepo(db *DB) *OwnerRepo {
	return &OwnerRepo{coll: db.database.Collection(db.cfg.OwnersCollection)}
}

// GetByID returns the owner with the given hex id, or (nil, nil) when no
// such owner exists
func (r *OwnerRepo) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var owner models.Owner
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&owner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &owner, nil
}
