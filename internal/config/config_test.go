package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

// baseValidConfig returns a fully-valid configuration object that callers
// can tweak inside table tests.
func baseValidConfig() Config {
	return Config{
		AppPort:          8080,
		LogLevel:         "info",
		LogFormat:        "json",
		StorageDriver:    DriverFile,
		DataFile:         "./planboard.json",
		MongoURI:         "mongodb://localhost:27017",
		MongoDBName:      "test",
		ImportRatePerMin: 5,
		WSMaxSessionSec:  900,
		WSOutboxBuffer:   256,
	}
}

// clearConfigEnvVars removes every environment variable that the Config loader
// consumes so each test starts with a clean slate.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"APP_PORT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"STORAGE_DRIVER",
		"DATA_FILE",
		"MONGO_URI",
		"MONGO_DB_NAME",
		"IMPORT_RATE_PER_MIN",
		"WS_MAX_SESSION_SEC",
		"WS_OUTBOX_BUFFER",
		"ROUTE_METRICS_ENABLED",
		"REQUEST_LOGGING_ENABLED",
		"PROFILING_ENABLED",
		"PYROSCOPE_ADDRESS",
	} {
		if err := os.Unsetenv(k); err != nil {
			t.Logf("warning: failed to unset %s: %v", k, err)
		}
	}
}

func TestConfigLoadDefaults(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DriverFile, cfg.StorageDriver)
	assert.Equal(t, "./planboard.json", cfg.DataFile)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "planboard", cfg.MongoDBName)
	assert.Equal(t, 5, cfg.ImportRatePerMin)
	assert.Equal(t, 900, cfg.WSMaxSessionSec)
	assert.Equal(t, 256, cfg.WSOutboxBuffer)
	assert.True(t, cfg.RouteMetricsEnabled)
	assert.True(t, cfg.RequestLoggingEnabled)
	assert.False(t, cfg.ProfilingEnabled)
}

func TestConfigLoadWithOverride(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	t.Setenv("APP_PORT", "9999")
	t.Setenv("STORAGE_DRIVER", "mongo")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.AppPort)
	assert.Equal(t, DriverMongo, cfg.StorageDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
}

func TestConfigCaching(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	cfg1, err := Load()
	require.NoError(t, err)

	// second call should hit the cache
	cfg2, err := Load()
	require.NoError(t, err)

	assert.Equal(t, cfg1, cfg2)
}

func TestConfigRequestLoggingDisabled(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	t.Setenv("REQUEST_LOGGING_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.RequestLoggingEnabled)
}

// -----------------------------------------------------------------------------
// Validate() unit tests (table-driven)
// -----------------------------------------------------------------------------

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config) // mutates the baseValidConfig
		wantErr bool
	}{
		{
			name: "valid file driver config",
			modify: func(*Config) {
				// No-op: baseValidConfig already returns a valid configuration.
			},
		},
		{
			name: "valid mongo driver config",
			modify: func(c *Config) {
				c.StorageDriver = DriverMongo
			},
		},
		{
			name: "invalid port - zero",
			modify: func(c *Config) {
				c.AppPort = 0
			},
			wantErr: true,
		},
		{
			name: "empty log level",
			modify: func(c *Config) {
				c.LogLevel = ""
			},
			wantErr: true,
		},
		{
			name: "empty log format",
			modify: func(c *Config) {
				c.LogFormat = ""
			},
			wantErr: true,
		},
		{
			name: "unknown storage driver",
			modify: func(c *Config) {
				c.StorageDriver = "s3"
			},
			wantErr: true,
		},
		{
			name: "file driver without data file",
			modify: func(c *Config) {
				c.DataFile = ""
			},
			wantErr: true,
		},
		{
			name: "mongo driver without URI",
			modify: func(c *Config) {
				c.StorageDriver = DriverMongo
				c.MongoURI = ""
			},
			wantErr: true,
		},
		{
			name: "mongo driver without db name",
			modify: func(c *Config) {
				c.StorageDriver = DriverMongo
				c.MongoDBName = ""
			},
			wantErr: true,
		},
		{
			name: "import rate too low",
			modify: func(c *Config) {
				c.ImportRatePerMin = 0
			},
			wantErr: true,
		},
		{
			name: "ws session seconds too low",
			modify: func(c *Config) {
				c.WSMaxSessionSec = 0
			},
			wantErr: true,
		},
		{
			name: "ws outbox buffer too low",
			modify: func(c *Config) {
				c.WSOutboxBuffer = 0
			},
			wantErr: true,
		},
		{
			name: "profiling without pyroscope address",
			modify: func(c *Config) {
				c.ProfilingEnabled = true
				c.PyroscopeAddress = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseValidConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
