package config

import (
	"errors"
	"sync"

	"github.com/spf13/viper"
)

// Storage driver names.
const (
	DriverFile  = "file"
	DriverMongo = "mongo"
)

// Config holds all application configuration
type Config struct {
	AppPort               int    `mapstructure:"APP_PORT"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	LogFormat             string `mapstructure:"LOG_FORMAT"`
	StorageDriver         string `mapstructure:"STORAGE_DRIVER"`
	DataFile              string `mapstructure:"DATA_FILE"`
	MongoURI              string `mapstructure:"MONGO_URI"`
	MongoDBName           string `mapstructure:"MONGO_DB_NAME"`
	ImportRatePerMin      int    `mapstructure:"IMPORT_RATE_PER_MIN"`
	WSMaxSessionSec       int    `mapstructure:"WS_MAX_SESSION_SEC"`
	WSOutboxBuffer        int    `mapstructure:"WS_OUTBOX_BUFFER"`
	RouteMetricsEnabled   bool   `mapstructure:"ROUTE_METRICS_ENABLED"`
	RequestLoggingEnabled bool   `mapstructure:"REQUEST_LOGGING_ENABLED"`
	ProfilingEnabled      bool   `mapstructure:"PROFILING_ENABLED"`
	PyroscopeAddress      string `mapstructure:"PYROSCOPE_ADDRESS"`
}

var (
	cachedConfig *Config
	configMutex  sync.RWMutex
)

// Load loads configuration from environment variables and .env file
// It caches the result for subsequent calls
func Load() (Config, error) {
	configMutex.RLock()
	if cachedConfig != nil {
		defer configMutex.RUnlock()
		return *cachedConfig, nil
	}
	configMutex.RUnlock()

	configMutex.Lock()
	defer configMutex.Unlock()

	// Double-check in case another goroutine loaded it while we waited for the lock
	if cachedConfig != nil {
		return *cachedConfig, nil
	}

	v := viper.New()

	// Set defaults
	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STORAGE_DRIVER", DriverFile)
	v.SetDefault("DATA_FILE", "./planboard.json")
	v.SetDefault("MONGO_URI", "mongodb://mongo:27017")
	v.SetDefault("MONGO_DB_NAME", "planboard")
	v.SetDefault("IMPORT_RATE_PER_MIN", 5)
	v.SetDefault("WS_MAX_SESSION_SEC", 900)
	v.SetDefault("WS_OUTBOX_BUFFER", 256) // WebSocket channel buffer size
	v.SetDefault("ROUTE_METRICS_ENABLED", true)
	v.SetDefault("REQUEST_LOGGING_ENABLED", true)
	v.SetDefault("PROFILING_ENABLED", false)
	v.SetDefault("PYROSCOPE_ADDRESS", "http://pyroscope:4040")

	// Configure Viper to read from .env file (if present)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Try to read .env file (it's okay if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	// Override with OS environment variables
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	// Cache the configuration
	cachedConfig = &cfg

	return cfg, nil
}

// ResetCache clears the cached configuration (for testing purposes)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()
	cachedConfig = nil
}

// Validate checks if required configuration fields are properly set
func (c Config) Validate() error {
	if c.AppPort <= 0 {
		return errors.New("APP_PORT must be greater than 0")
	}
	if c.LogLevel == "" {
		return errors.New("LOG_LEVEL cannot be empty")
	}
	if c.LogFormat == "" {
		return errors.New("LOG_FORMAT cannot be empty")
	}
	switch c.StorageDriver {
	case DriverFile:
		if c.DataFile == "" {
			return errors.New("DATA_FILE cannot be empty with the file driver")
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI cannot be empty with the mongo driver")
		}
		if c.MongoDBName == "" {
			return errors.New("MONGO_DB_NAME cannot be empty with the mongo driver")
		}
	default:
		return errors.New("STORAGE_DRIVER must be either file or mongo")
	}
	if c.ImportRatePerMin < 1 {
		return errors.New("IMPORT_RATE_PER_MIN must be greater than or equal to 1")
	}
	if c.WSMaxSessionSec <= 0 {
		return errors.New("WS_MAX_SESSION_SEC must be greater than 0")
	}
	if c.WSOutboxBuffer <= 0 {
		return errors.New("WS_OUTBOX_BUFFER must be greater than 0")
	}
	if c.ProfilingEnabled && c.PyroscopeAddress == "" {
		return errors.New("PYROSCOPE_ADDRESS cannot be empty when profiling is enabled")
	}
	return nil
}
