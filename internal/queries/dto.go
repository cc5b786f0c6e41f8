package queries

// PropertyDto is the listing-level view of a property. Image holds the URL
// of the first enabled image and is omitted when the property has none.
type PropertyDto struct {
	IDProperty string  `json:"idProperty"`
	IDOwner    string  `json:"idOwner"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
}

// OwnerDto is the owner sub-record embedded in a property detail response
type OwnerDto struct {
	IDOwner string `json:"idOwner"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Photo   string `json:"photo,omitempty"`
}

// PropertyDetailDto is the fully aggregated detail view of a property.
// AdditionalImages always serializes as an array, possibly empty, and never
// contains the primary Image.
type PropertyDetailDto struct {
	IDProperty       string    `json:"idProperty"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Price            float64   `json:"price"`
	CodeInternal     string    `json:"codeInternal"`
	Year             int       `json:"year"`
	Image            string    `json:"image,omitempty"`
	Owner            *OwnerDto `json:"owner,omitempty"`
	AdditionalImages []string  `json:"additionalImages"`
}
