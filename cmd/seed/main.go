// Command seed imports sample listing data into MongoDB. It drops and
// repopulates the four collections so a fresh database can serve the API
// and web client immediately.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"real-estate-listings/internal/config"
	"real-estate-listings/internal/database"
	"real-estate-listings/internal/models"
)

type seedFile struct {
	Owners         []seedOwner    `json:"owners"`
	Properties     []seedProperty `json:"properties"`
	PropertyImages []seedImage    `json:"propertyImages"`
	PropertyTraces []seedTrace    `json:"propertyTraces"`
}

type seedOwner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Photo    string `json:"photo"`
	Birthday string `json:"birthday"` // YYYY-MM-DD
}

type seedProperty struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	Price        json.Number `json:"price"`
	CodeInternal string      `json:"codeInternal"`
	Year         int         `json:"year"`
	IDOwner      string      `json:"idOwner"`
}

type seedImage struct {
	ID         string `json:"id"`
	IDProperty string `json:"idProperty"`
	File       string `json:"file"`
	Enabled    bool   `json:"enabled"`
}

type seedTrace struct {
	ID         string      `json:"id"`
	IDProperty string      `json:"idProperty"`
	DateSale   string      `json:"dateSale"` // YYYY-MM-DD
	Name       string      `json:"name"`
	Value      json.Number `json:"value"`
	Tax        json.Number `json:"tax"`
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := flag.String("config", "config.yaml", "path to config file")
	dataPath := flag.String("data", "cmd/seed/seed-data.json", "path to seed data file")
	flag.Parse()

	appConfig, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appConfig.ApplyEnv()

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("Failed to read seed data: %v", err)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse seed data: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, appConfig.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(context.Background())

	// Drop existing collections so reseeding is repeatable
	for _, name := range []string{
		appConfig.Mongo.PropertiesCollection,
		appConfig.Mongo.OwnersCollection,
		appConfig.Mongo.PropertyImagesCollection,
		appConfig.Mongo.PropertyTracesCollection,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Fatalf("Failed to drop collection %s: %v", name, err)
		}
	}

	importOwners(ctx, db, appConfig.Mongo.OwnersCollection, data.Owners)
	importProperties(ctx, db, data.Properties)
	importImages(ctx, db, appConfig.Mongo.PropertyImagesCollection, data.PropertyImages)
	importTraces(ctx, db, appConfig.Mongo.PropertyTracesCollection, data.PropertyTraces)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("Seed completed successfully")
}

func importOwners(ctx context.Context, db *database.DB, collection string, owners []seedOwner) {
	if len(owners) == 0 {
		return
	}

	docs := make([]interface{}, 0, len(owners))
	for _, o := range owners {
		docs = append(docs, models.Owner{
			ID:       mustObjectID(o.ID),
			Name:     o.Name,
			Address:  o.Address,
			Photo:    o.Photo,
			Birthday: mustDate(o.Birthday),
		})
	}

	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to import owners: %v", err)
	}
	log.Printf("Imported %d owners", len(docs))
}

func importProperties(ctx context.Context, db *database.DB, properties []seedProperty) {
	repo := database.NewPropertyRepo(db)

	for _, p := range properties {
		property := &models.Property{
			ID:           mustObjectID(p.ID),
			Name:         p.Name,
			Address:      p.Address,
			Price:        mustDecimal(p.Price),
			CodeInternal: p.CodeInternal,
			Year:         p.Year,
			OwnerID:      mustObjectID(p.IDOwner),
		}
		if err := repo.Create(ctx, property); err != nil {
			log.Fatalf("Failed to import property %s: %v", p.Name, err)
		}
	}
	log.Printf("Imported %d properties", len(properties))
}

func importImages(ctx context.Context, db *database.DB, collection string, images []seedImage) {
	if len(images) == 0 {
		return
	}

	docs := make([]interface{}, 0, len(images))
	for _, img := range images {
		docs = append(docs, models.PropertyImage{
			ID:         mustObjectID(img.ID),
			PropertyID: mustObjectID(img.IDProperty),
			File:       img.File,
			Enabled:    img.Enabled,
		})
	}

	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to import property images: %v", err)
	}
	log.Printf("Imported %d property images", len(docs))
}

func importTraces(ctx context.Context, db *database.DB, collection string, traces []seedTrace) {
	if len(traces) == 0 {
		return
	}

	docs := make([]interface{}, 0, len(traces))
	for _, t := range traces {
		docs = append(docs, models.PropertyTrace{
			ID:         mustObjectID(t.ID),
			PropertyID: mustObjectID(t.IDProperty),
			DateSale:   mustDate(t.DateSale),
			Name:       t.Name,
			Value:      mustDecimal(t.Value),
			Tax:        mustDecimal(t.Tax),
		})
	}

	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to import property traces: %v", err)
	}
	log.Printf("Imported %d property traces", len(docs))
}

func mustObjectID(hex string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		log.Fatalf("Invalid object id %q: %v", hex, err)
	}
	return oid
}

func mustDecimal(n json.Number) primitive.Decimal128 {
	d, err := primitive.ParseDecimal128(n.String())
	if err != nil {
		log.Fatalf("Invalid decimal %q: %v", n, err)
	}
	return d
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("Invalid date %q: %v", s, err)
	}
	return t
}
