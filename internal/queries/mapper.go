package queries

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"real-estate-listings/internal/models"
)

// Explicit field-by-field mapping between entities and DTOs. Image and
// AdditionalImages are enrichment fields filled in by the query handlers,
// not by the mappers.

func toPropertyDto(p models.Property) PropertyDto {
	return PropertyDto{
		IDProperty: p.ID.Hex(),
		IDOwner:    p.OwnerID.Hex(),
		Name:       p.Name,
		Address:    p.Address,
		Price:      decimalToFloat(p.Price),
	}
}

func toPropertyDetailDto(p models.Property) PropertyDetailDto {
	return PropertyDetailDto{
		IDProperty:       p.ID.Hex(),
		Name:             p.Name,
		Address:          p.Address,
		Price:            decimalToFloat(p.Price),
		CodeInternal:     p.CodeInternal,
		Year:             p.Year,
		AdditionalImages: []string{},
	}
}

func toOwnerDto(o models.Owner) OwnerDto {
	return OwnerDto{
		IDOwner: o.ID.Hex(),
		Name:    o.Name,
		Address: o.Address,
		Photo:   o.Photo,
	}
}

func decimalToFloat(d primitive.Decimal128) float64 {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0
	}
	return f
}
