// Package config handles configuration loading for the X12 translation
// daemon.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows sensitive values
// like database credentials to be injected at runtime.
//
// # Configuration Sections
//
//   - server: HTTP server settings (port, base path)
//   - storage: transaction log backend (memory or MongoDB)
//   - translation: envelope identity and behavior (sender/receiver IDs,
//     usage indicator, control number start)
//
// # Example Configuration
//
//	server:
//	  port: 8080
//	  basePath: "/api/v1"
//
//	storage:
//	  type: mongodb
//	  mongodb:
//	    uri: ${MONGODB_URI}
//	    database: x12
//
//	translation:
//	  senderId: MYCOMPANY
//	  receiverId: TRADINGPARTNER
//	  usage: T
//	  controlStart: 1
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backend selectors.
const (
	StorageMemory  = "memory"
	StorageMongoDB = "mongodb"
)

// Config is the root configuration structure
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Storage     StorageConfig     `yaml:"storage"`
	Translation TranslationConfig `yaml:"translation"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port     int    `yaml:"port"`
	BasePath string `yaml:"basePath"`
}

// StorageConfig holds transaction log settings
type StorageConfig struct {
	Type    string        `yaml:"type"` // memory or mongodb
	MongoDB MongoDBConfig `yaml:"mongodb"`
}

// MongoDBConfig holds MongoDB connection settings
type MongoDBConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// TranslationConfig holds envelope identity and behavior settings
type TranslationConfig struct {
	// SenderID and ReceiverID are the default interchange identities
	// when a request does not carry its own.
	SenderID   string `yaml:"senderId"`
	ReceiverID string `yaml:"receiverId"`

	// Usage is the ISA15 indicator: T for test, P for production.
	Usage string `yaml:"usage"`

	// ControlStart seeds the sequential interchange control number
	// source. Zero keeps the fixed placeholder numbers.
	ControlStart uint64 `yaml:"controlStart"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given: an
// in-memory log behind the standard port.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.BasePath == "" {
		c.Server.BasePath = "/api/v1"
	}
	if c.Storage.Type == "" {
		c.Storage.Type = StorageMemory
	}
	if c.Storage.MongoDB.Database == "" {
		c.Storage.MongoDB.Database = "x12"
	}
	if c.Storage.MongoDB.Collection == "" {
		c.Storage.MongoDB.Collection = "transactions"
	}
	if c.Translation.Usage == "" {
		c.Translation.Usage = "T"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Type {
	case StorageMemory:
	case StorageMongoDB:
		if c.Storage.MongoDB.URI == "" {
			return fmt.Errorf("storage.mongodb.uri is required when type is 'mongodb'")
		}
	default:
		return fmt.Errorf("storage.type must be 'memory' or 'mongodb', got '%s'", c.Storage.Type)
	}

	switch c.Translation.Usage {
	case "T", "P":
	default:
		return fmt.Errorf("translation.usage must be 'T' or 'P', got '%s'", c.Translation.Usage)
	}

	return nil
}
