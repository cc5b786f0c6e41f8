package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PropertyImage represents an image associated with a property.
// Disabled images are never returned to clients.
type PropertyImage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"idPropertyImage"`
	PropertyID primitive.ObjectID `bson:"idProperty" json:"idProperty"`
	File       string             `bson:"file" json:"file"`
	Enabled    bool               `bson:"enabled" json:"enabled"`
}
