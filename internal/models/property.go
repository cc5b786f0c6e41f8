package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Property represents a stored property document.
// Price is kept as Decimal128 to preserve the exact value stored in MongoDB;
// it is converted to a float only when building API responses.
type Property struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"idProperty"`
	Name         string               `bson:"name" json:"name"`
	Address      string               `bson:"address" json:"address"`
	Price        primitive.Decimal128 `bson:"price" json:"price"`
	CodeInternal string               `bson:"codeInternal" json:"codeInternal"`
	Year         int                  `bson:"year" json:"year"`
	OwnerID      primitive.ObjectID   `bson:"idOwner" json:"idOwner"`
}
