package queries

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"real-estate-listings/internal/models"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testPropertyRepo struct {
	properties []models.Property
	err        error
}

func (r *testPropertyRepo) Search(ctx context.Context, f PropertyFilters) ([]models.Property, error) {
	if r.err != nil {
		return nil, r.err
	}

	out := make([]models.Property, 0)
	for _, p := range r.properties {
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Address != "" && !strings.Contains(strings.ToLower(p.Address), strings.ToLower(f.Address)) {
			continue
		}
		price := decimalToFloat(p.Price)
		if f.MinPrice != nil && price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *testPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.properties {
		if p.ID.Hex() == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

type testOwnerRepo struct {
	owners []models.Owner
	err    error
}

func (r *testOwnerRepo) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, o := range r.owners {
		if o.ID.Hex() == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

type testImageRepo struct {
	images []models.PropertyImage
	err    error
}

func (r *testImageRepo) FirstEnabledByProperty(ctx context.Context, propertyID string) (*models.PropertyImage, error) {
	images, err := r.EnabledByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	return &images[0], nil
}

func (r *testImageRepo) EnabledByProperty(ctx context.Context, propertyID string) ([]models.PropertyImage, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.PropertyImage, 0)
	for _, img := range r.images {
		if img.PropertyID.Hex() == propertyID && img.Enabled {
			out = append(out, img)
		}
	}
	return out, nil
}

// -------------------------
// Helpers
// -------------------------

func oid(n int) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(fmt.Sprintf("%024x", n))
	if err != nil {
		panic(err)
	}
	return id
}

func dec(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

func newTestService(props *testPropertyRepo, owners *testOwnerRepo, images *testImageRepo) *Service {
	if props == nil {
		props = &testPropertyRepo{}
	}
	if owners == nil {
		owners = &testOwnerRepo{}
	}
	if images == nil {
		images = &testImageRepo{}
	}
	return NewService(props, owners, images)
}

func twoProperties(t *testing.T) *testPropertyRepo {
	t.Helper()
	return &testPropertyRepo{properties: []models.Property{
		{ID: oid(2), Name: "Modern Apartment", Address: "456 Bay Road", Price: dec(t, "180000"), OwnerID: oid(11)},
		{ID: oid(1), Name: "Beautiful House", Address: "123 Palm Street", Price: dec(t, "250000"), OwnerID: oid(10)},
	}}
}

// -------------------------
// Listing tests
// -------------------------

func TestGetProperties_NoFilters_ReturnsAllSortedByName(t *testing.T) {
	svc := newTestService(twoProperties(t), nil, nil)

	got, err := svc.GetProperties(context.Background(), PropertyFilters{})
	if err != nil {
		t.Fatalf("GetProperties returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(got))
	}
	if got[0].Name != "Beautiful House" || got[1].Name != "Modern Apartment" {
		t.Fatalf("expected name-sorted listing, got %q then %q", got[0].Name, got[1].Name)
	}
}

func TestGetProperties_MinPriceFilter(t *testing.T) {
	svc := newTestService(twoProperties(t), nil, nil)

	min := 200000.0
	got, err := svc.GetProperties(context.Background(), PropertyFilters{MinPrice: &min})
	if err != nil {
		t.Fatalf("GetProperties returned error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Beautiful House" {
		t.Fatalf("expected only Beautiful House, got %#v", got)
	}
}

func TestGetProperties_FiltersAreConjunctive(t *testing.T) {
	repo := twoProperties(t)
	svc := newTestService(repo, nil, nil)

	// Name matches both ("a"), address only matches one
	got, err := svc.GetProperties(context.Background(), PropertyFilters{Name: "a", Address: "palm"})
	if err != nil {
		t.Fatalf("GetProperties returned error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Beautiful House" {
		t.Fatalf("expected conjunction to keep only Beautiful House, got %#v", got)
	}
}

func TestGetProperties_EnrichesWithFirstEnabledImage(t *testing.T) {
	images := &testImageRepo{images: []models.PropertyImage{
		{ID: oid(101), PropertyID: oid(1), File: "https://img/house-front.jpg", Enabled: true},
		{ID: oid(102), PropertyID: oid(1), File: "https://img/house-back.jpg", Enabled: true},
	}}
	svc := newTestService(twoProperties(t), nil, images)

	got, err := svc.GetProperties(context.Background(), PropertyFilters{})
	if err != nil {
		t.Fatalf("GetProperties returned error: %v", err)
	}

	if got[0].Image != "https://img/house-front.jpg" {
		t.Fatalf("expected first enabled image, got %q", got[0].Image)
	}
	// Property without images keeps the field absent
	if got[1].Image != "" {
		t.Fatalf("expected no image for Modern Apartment, got %q", got[1].Image)
	}
}

func TestGetProperties_ImageLookupFailureFailsWholeRequest(t *testing.T) {
	images := &testImageRepo{err: errors.New("connection reset")}
	svc := newTestService(twoProperties(t), nil, images)

	got, err := svc.GetProperties(context.Background(), PropertyFilters{})
	if err == nil {
		t.Fatalf("expected error, got result %#v", got)
	}
	if got != nil {
		t.Fatalf("expected no partial results, got %#v", got)
	}
}

func TestGetProperties_StorageErrorPropagates(t *testing.T) {
	repo := &testPropertyRepo{err: errors.New("no reachable servers")}
	svc := newTestService(repo, nil, nil)

	if _, err := svc.GetProperties(context.Background(), PropertyFilters{}); err == nil {
		t.Fatalf("expected error")
	}
}

// -------------------------
// Detail tests
// -------------------------

func TestGetPropertyByID_NotFoundIsNilNotError(t *testing.T) {
	svc := newTestService(twoProperties(t), nil, nil)

	got, err := svc.GetPropertyByID(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("expected not-found to be nil result, got error %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil result, got %#v", got)
	}
}

func TestGetPropertyByID_MissingOwnerIsNotAnError(t *testing.T) {
	props := &testPropertyRepo{properties: []models.Property{
		{ID: oid(1), Name: "Beautiful House", Address: "123 Palm Street", Price: dec(t, "250000"), CodeInternal: "PROP-001", Year: 2015, OwnerID: oid(99)},
	}}
	svc := newTestService(props, &testOwnerRepo{}, nil)

	got, err := svc.GetPropertyByID(context.Background(), oid(1).Hex())
	if err != nil {
		t.Fatalf("GetPropertyByID returned error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected detail result")
	}
	if got.Owner != nil {
		t.Fatalf("expected absent owner, got %#v", got.Owner)
	}
	if got.Name != "Beautiful House" || got.CodeInternal != "PROP-001" || got.Year != 2015 {
		t.Fatalf("expected property fields populated, got %#v", got)
	}
}

func TestGetPropertyByID_IncludesOwner(t *testing.T) {
	props := &testPropertyRepo{properties: []models.Property{
		{ID: oid(1), Name: "Beautiful House", Price: dec(t, "250000"), OwnerID: oid(10)},
	}}
	owners := &testOwnerRepo{owners: []models.Owner{
		{ID: oid(10), Name: "Carlos Rios", Address: "100 Ocean Drive", Photo: "https://img/carlos.jpg"},
	}}
	svc := newTestService(props, owners, nil)

	got, err := svc.GetPropertyByID(context.Background(), oid(1).Hex())
	if err != nil {
		t.Fatalf("GetPropertyByID returned error: %v", err)
	}
	if got.Owner == nil {
		t.Fatalf("expected owner to be present")
	}
	if got.Owner.IDOwner != oid(10).Hex() || got.Owner.Name != "Carlos Rios" || got.Owner.Photo != "https://img/carlos.jpg" {
		t.Fatalf("unexpected owner %#v", got.Owner)
	}
}

func TestGetPropertyByID_SplitsImagesAndExcludesDisabled(t *testing.T) {
	props := &testPropertyRepo{properties: []models.Property{
		{ID: oid(1), Name: "Beautiful House", Price: dec(t, "250000"), OwnerID: oid(10)},
	}}
	images := &testImageRepo{images: []models.PropertyImage{
		{ID: oid(101), PropertyID: oid(1), File: "https://img/1.jpg", Enabled: true},
		{ID: oid(102), PropertyID: oid(1), File: "https://img/2.jpg", Enabled: true},
		{ID: oid(103), PropertyID: oid(1), File: "https://img/disabled.jpg", Enabled: false},
	}}
	svc := newTestService(props, nil, images)

	got, err := svc.GetPropertyByID(context.Background(), oid(1).Hex())
	if err != nil {
		t.Fatalf("GetPropertyByID returned error: %v", err)
	}
	if got.Image != "https://img/1.jpg" {
		t.Fatalf("expected first enabled image, got %q", got.Image)
	}
	if len(got.AdditionalImages) != 1 || got.AdditionalImages[0] != "https://img/2.jpg" {
		t.Fatalf("expected additional images to exclude the first, got %#v", got.AdditionalImages)
	}
	for _, img := range got.AdditionalImages {
		if img == "https://img/disabled.jpg" {
			t.Fatalf("disabled image leaked into response")
		}
	}
}

func TestGetPropertyByID_NoImages(t *testing.T) {
	props := &testPropertyRepo{properties: []models.Property{
		{ID: oid(1), Name: "Beautiful House", Price: dec(t, "250000"), OwnerID: oid(10)},
	}}
	svc := newTestService(props, nil, nil)

	got, err := svc.GetPropertyByID(context.Background(), oid(1).Hex())
	if err != nil {
		t.Fatalf("GetPropertyByID returned error: %v", err)
	}
	if got.Image != "" {
		t.Fatalf("expected absent image, got %q", got.Image)
	}
	if got.AdditionalImages == nil || len(got.AdditionalImages) != 0 {
		t.Fatalf("expected empty additional images slice, got %#v", got.AdditionalImages)
	}
}

func TestGetPropertyByID_StorageErrorPropagates(t *testing.T) {
	props := &testPropertyRepo{err: errors.New("no reachable servers")}
	svc := newTestService(props, nil, nil)

	if _, err := svc.GetPropertyByID(context.Background(), oid(1).Hex()); err == nil {
		t.Fatalf("expected error")
	}
}
