package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Mongo  MongoConfig  `yaml:"mongo"`
	Debug  bool         `yaml:"debug"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port string `yaml:"port"`
}

// MongoConfig contains MongoDB connection settings.
// Collection names are configurable so that the same binary can run
// against differently named databases (test fixtures, imports, etc.).
type MongoConfig struct {
	URI                      string `yaml:"uri"`
	Database                 string `yaml:"database"`
	PropertiesCollection     string `yaml:"properties_collection"`
	OwnersCollection         string `yaml:"owners_collection"`
	PropertyImagesCollection string `yaml:"property_images_collection"`
	PropertyTracesCollection string `yaml:"property_traces_collection"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Mongo: MongoConfig{
			URI:                      "mongodb://localhost:27017",
			Database:                 "RealEstateDb",
			PropertiesCollection:     "Properties",
			OwnersCollection:         "Owners",
			PropertyImagesCollection: "PropertyImages",
			PropertyTracesCollection: "PropertyTraces",
		},
		Debug: false,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filepath string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	// Read file
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides file-based settings with environment variables.
// Environment always wins so deployments can keep a single config file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGODB_DATABASE"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("APP_DEBUG"); v == "1" || v == "true" {
		c.Debug = true
	}
}
