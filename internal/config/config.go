package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

const (
	ResizeModeCompat = "compat"
	ResizeModeFit    = "fit"
)

type Config struct {
	ImageFetchTimeout time.Duration
	MaxImageBytes     int64

	MaxSide       int
	ResizeMode    string
	DisplayMargin int
	WindowTitle   string

	AzureAccountName string
	AzureAccountKey  string

	// empty allows every host
	AllowedURLHosts []string

	LogLevel  string
	LogFormat string
}

// AzureEnabled reports whether blob URLs should go through the authenticated client
func (c *Config) AzureEnabled() bool {
	return c.AzureAccountName != "" && c.AzureAccountKey != ""
}

// AzureBlobHost is the blob service host for the configured account
func (c *Config) AzureBlobHost() string {
	return fmt.Sprintf("%s.blob.core.windows.net", c.AzureAccountName)
}

func LoadFromEnv() (*Config, error) {
	// Set defaults
	cfg := &Config{
		ImageFetchTimeout: parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		MaxImageBytes:     parseIntOrDefault("MAX_IMAGE_BYTES", 32*1024*1024), // 32MB
		MaxSide:           int(parseIntOrDefault("MAX_SIDE", 500)),
		ResizeMode:        strings.ToLower(getEnvOrDefault("RESIZE_MODE", ResizeModeCompat)),
		DisplayMargin:     int(parseIntOrDefault("DISPLAY_MARGIN", 15)),
		WindowTitle:       getEnvOrDefault("WINDOW_TITLE", "Image Averager"),
		AzureAccountName:  strings.TrimSpace(os.Getenv("AZURE_STORAGE_ACCOUNT")),
		AzureAccountKey:   strings.TrimSpace(os.Getenv("AZURE_STORAGE_KEY")),
		AllowedURLHosts:   parseListOrEmpty("ALLOWED_URL_HOSTS"),
		LogLevel:          strings.ToLower(getEnvOrDefault("LOG_LEVEL", "warn")),
		LogFormat:         strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var err error
	if c.ImageFetchTimeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("IMAGE_FETCH_TIMEOUT must be > 0 (got %s)", c.ImageFetchTimeout))
	}
	if c.MaxImageBytes <= 0 {
		err = multierr.Append(err, fmt.Errorf("MAX_IMAGE_BYTES must be > 0 (got %d)", c.MaxImageBytes))
	}
	if c.MaxSide <= 0 {
		err = multierr.Append(err, fmt.Errorf("MAX_SIDE must be > 0 (got %d)", c.MaxSide))
	}
	if c.DisplayMargin < 0 {
		err = multierr.Append(err, fmt.Errorf("DISPLAY_MARGIN must be >= 0 (got %d)", c.DisplayMargin))
	}
	if c.ResizeMode != ResizeModeCompat && c.ResizeMode != ResizeModeFit {
		err = multierr.Append(err, fmt.Errorf("RESIZE_MODE must be %q or %q (got %q)", ResizeModeCompat, ResizeModeFit, c.ResizeMode))
	}
	if (c.AzureAccountName == "") != (c.AzureAccountKey == "") {
		err = multierr.Append(err, fmt.Errorf("AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_KEY must be set together"))
	}
	return err
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// parseListOrEmpty splits a comma separated value into lower-cased, non-empty items
func parseListOrEmpty(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
