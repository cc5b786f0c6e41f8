package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"real-estate-listings/internal/client"
	"real-estate-listings/internal/web"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	apiURL := getEnv("API_URL", "http://localhost:8080")
	port := getEnv("WEB_PORT", "8081")

	api := client.New(apiURL)
	r := web.NewRouter(api)

	log.Printf("Web client starting on port %s (API at %s)", port, apiURL)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start web server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
