package queries

import (
	"context"
	"fmt"

	"real-estate-listings/internal/models"
)

// PropertyFilters holds the four optional listing filters. Nil price bounds
// mean unbounded on that side; empty strings mean no text filter.
type PropertyFilters struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
}

// PropertyRepository provides the read access the queries need. Lookups that
// find nothing return (nil, nil); errors are reserved for storage failures.
// Write operations live on the concrete repository; the API never exposes them.
type PropertyRepository interface {
	Search(ctx context.Context, filters PropertyFilters) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
}

// OwnerRepository provides read access to stored owners
type OwnerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Owner, error)
}

// PropertyImageRepository provides read access to stored property images.
// Both lookups only consider enabled images, ordered by _id ascending so
// "first image" is stable across calls.
type PropertyImageRepository interface {
	FirstEnabledByProperty(ctx context.Context, propertyID string) (*models.PropertyImage, error)
	EnabledByProperty(ctx context.Context, propertyID string) ([]models.PropertyImage, error)
}

// Service executes the two read queries of the API. Each query is a plain
// method call: query parameters in, DTOs or an explicit not-found out.
type Service struct {
	properties PropertyRepository
	owners     OwnerRepository
	images     PropertyImageRepository
}

// NewService creates a query service on top of the given repositories
func NewService(properties PropertyRepository, owners OwnerRepository, images PropertyImageRepository) *Service {
	return &Service{
		properties: properties,
		owners:     owners,
		images:     images,
	}
}

// GetProperties returns all properties matching the conjunction of the
// supplied filters, sorted by name, each annotated with the URL of its first
// enabled image. A failed image lookup fails the whole request; there are no
// partial results.
func (s *Service) GetProperties(ctx context.Context, filters PropertyFilters) ([]PropertyDto, error) {
	properties, err := s.properties.Search(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	dtos := make([]PropertyDto, 0, len(properties))
	for _, p := range properties {
		dto := toPropertyDto(p)

		img, err := s.images.FirstEnabledByProperty(ctx, p.ID.Hex())
		if err != nil {
			return nil, fmt.Errorf("failed to load image for property %s: %w", p.ID.Hex(), err)
		}
		if img != nil {
			dto.Image = img.File
		}

		dtos = append(dtos, dto)
	}

	return dtos, nil
}

// GetPropertyByID returns the aggregated detail view for a property, or
// (nil, nil) when no property with that id exists. A missing owner is not an
// error; the owner field is simply left out.
func (s *Service) GetPropertyByID(ctx context.Context, id string) (*PropertyDetailDto, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %s: %w", id, err)
	}
	if property == nil {
		return nil, nil
	}

	dto := toPropertyDetailDto(*property)

	owner, err := s.owners.GetByID(ctx, property.OwnerID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to load owner %s: %w", property.OwnerID.Hex(), err)
	}
	if owner != nil {
		ownerDto := toOwnerDto(*owner)
		dto.Owner = &ownerDto
	}

	images, err := s.images.EnabledByProperty(ctx, property.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to load images for property %s: %w", id, err)
	}
	if len(images) > 0 {
		dto.Image = images[0].File
		for _, img := range images[1:] {
			dto.AdditionalImages = append(dto.AdditionalImages, img.File)
		}
	}

	return &dto, nil
}
