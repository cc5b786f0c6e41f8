package database

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"real-estate-listings/internal/queries"
)

// buildPropertyFilter translates the four optional listing filters into a
// single MongoDB predicate. Each present filter contributes exactly one
// conjunct; with no filters present the empty document matches everything.
//
// Filter text is matched as a literal, case-insensitive substring: the input
// is regex-quoted before it becomes a pattern, so metacharacters supplied by
// the caller cannot change matching semantics.
func buildPropertyFilter(f queries.PropertyFilters) bson.D {
	var conjuncts []bson.D

	if f.Name != "" {
		conjuncts = append(conjuncts, bson.D{{
			Key:   "name",
			Value: primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"},
		}})
	}

	if f.Address != "" {
		conjuncts = append(conjuncts, bson.D{{
			Key:   "address",
			Value: primitive.Regex{Pattern: regexp.QuoteMeta(f.Address), Options: "i"},
		}})
	}

	if f.MinPrice != nil {
		conjuncts = append(conjuncts, bson.D{{
			Key:   "price",
			Value: bson.D{{Key: "$gte", Value: *f.MinPrice}},
		}})
	}

	if f.MaxPrice != nil {
		conjuncts = append(conjuncts, bson.D{{
			Key:   "price",
			Value: bson.D{{Key: "$lte", Value: *f.MaxPrice}},
		}})
	}

	if len(conjuncts) == 0 {
		return bson.D{}
	}

	return bson.D{{Key: "$and", Value: conjuncts}}
}
