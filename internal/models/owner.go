package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner represents a stored property owner document
type Owner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"idOwner"`
	Name     string             `bson:"name" json:"name"`
	Address  string             `bson:"address" json:"address"`
	Photo    string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Birthday time.Time          `bson:"birthday" json:"birthday"`
}
