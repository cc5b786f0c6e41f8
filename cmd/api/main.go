package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"real-estate-listings/internal/config"
	"real-estate-listings/internal/database"
	"real-estate-listings/internal/handlers"
	"real-estate-listings/internal/queries"
)

func main() {
	// Load .env if present (local development convenience)
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}
	appConfig.ApplyEnv()

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, appConfig.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Printf("Warning: Failed to close MongoDB connection: %v", err)
		}
	}()
	log.Printf("Connected to MongoDB database %s", appConfig.Mongo.Database)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Printf("Warning: Failed to create indexes: %v", err)
	}

	// Wire repositories and query service
	svc := queries.NewService(
		database.NewPropertyRepo(db),
		database.NewOwnerRepo(db),
		database.NewPropertyImageRepo(db),
	)

	r := handlers.NewRouter(svc, appConfig.Debug)

	port := appConfig.Server.Port
	log.Printf("Server starting on port %s (debug: %v)", port, appConfig.Debug)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
