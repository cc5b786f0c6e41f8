package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyTrace represents a historical sale record for a property.
// The collection is imported alongside the others but no query in the
// API reads it.
type PropertyTrace struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"idPropertyTrace"`
	PropertyID primitive.ObjectID   `bson:"idProperty" json:"idProperty"`
	DateSale   time.Time            `bson:"dateSale" json:"dateSale"`
	Name       string               `bson:"name" json:"name"`
	Value      primitive.Decimal128 `bson:"value" json:"value"`
	Tax        primitive.Decimal128 `bson:"tax" json:"tax"`
}
