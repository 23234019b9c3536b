// Package config provides configuration management for the backoffice.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/pathutil"
)

// Config represents the application configuration.
type Config struct {
	Server ServerConfig
	Client ClientConfig
	Debug  bool
}

// ServerConfig represents the REST backend configuration.
type ServerConfig struct {
	Port               string
	DataDir            string
	DBPath             string
	SettingsDBPath     string
	UploadDir          string
	ArchiveDir         string
	ReportDefaultsPath string
}

// ClientConfig represents the CLI's connection to the backend.
type ClientConfig struct {
	APIURL     string
	Timeout    time.Duration
	PropertyID int64
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Ignore a missing .env in the current directory
		_ = godotenv.Load()
	}

	timeout, err := parseDurationEnv("BACKOFFICE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	propertyID, err := parseInt64Env("BACKOFFICE_PROPERTY_ID", 0)
	if err != nil {
		return nil, err
	}

	paths := pathutil.New(pathutil.Config{
		DataDir:      getEnvOrDefault("DATA_DIR", "./data"),
		DatabasePath: os.Getenv("DB_PATH"),
		SettingsPath: os.Getenv("SETTINGS_DB_PATH"),
		UploadDir:    os.Getenv("UPLOAD_DIR"),
		ArchiveDir:   os.Getenv("ARCHIVE_DIR"),
	})

	config := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8080"),
			DataDir:            paths.GetDataDir(),
			DBPath:             paths.GetDatabasePath(),
			SettingsDBPath:     paths.GetSettingsPath(),
			UploadDir:          paths.GetUploadDir(),
			ArchiveDir:         paths.GetArchiveDir(),
			ReportDefaultsPath: os.Getenv("REPORT_DEFAULTS_PATH"),
		},
		Client: ClientConfig{
			APIURL:     getEnvOrDefault("BACKOFFICE_API_URL", "http://localhost:8080/api"),
			Timeout:    timeout,
			PropertyID: propertyID,
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Paths returns a resolver over the configured server paths.
func (c *Config) Paths() *pathutil.PathResolver {
	return pathutil.New(pathutil.Config{
		DataDir:      c.Server.DataDir,
		DatabasePath: c.Server.DBPath,
		SettingsPath: c.Server.SettingsDBPath,
		UploadDir:    c.Server.UploadDir,
		ArchiveDir:   c.Server.ArchiveDir,
	})
}

// Validate validates the configuration.
// It checks if all required fields are set, e.g. Validate([]string{"client", "propertyId"}).
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) < 2 {
			continue
		}

		var value string
		switch path[0] {
		case "server":
			switch path[1] {
			case "port":
				value = c.Server.Port
			case "dbPath":
				value = c.Server.DBPath
			case "settingsDbPath":
				value = c.Server.SettingsDBPath
			case "uploadDir":
				value = c.Server.UploadDir
			case "archiveDir":
				value = c.Server.ArchiveDir
			case "reportDefaultsPath":
				value = c.Server.ReportDefaultsPath
			}
		case "client":
			switch path[1] {
			case "apiUrl":
				value = c.Client.APIURL
			case "propertyId":
				if c.Client.PropertyID > 0 {
					value = "set"
				}
			}
		}

		if value == "" {
			missing = append(missing, strings.Join(path, "."))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid PORT: %s", c.Server.Port)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("invalid BACKOFFICE_TIMEOUT: %s", c.Client.Timeout)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseInt64Env parses an int64 from an environment variable.
// Returns defaultValue if the environment variable is not set.
func parseInt64Env(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %s", key, value)
	}

	return parsed, nil
}

// parseDurationEnv accepts a Go duration ("45s") or a bare number of seconds.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration value for %s: %s", key, value)
	}
	return d, nil
}
