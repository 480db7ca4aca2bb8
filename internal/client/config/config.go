// Package config loads runtime configuration for the club client.
//
// Sources and precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file, path taken from the -c/-config flag or the
//     CLUB_CONFIG environment variable.
//  3. Environment variables (CLUB_*), which override earlier values.
package config

import "time"

// Config holds runtime settings for the club client CLI.
type Config struct {
	// APIBaseURL is the scheme://host[:port] prefix of the club API.
	APIBaseURL string
	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration
	// PollInterval is the notification poll period.
	PollInterval time.Duration
	// ContentCacheTTL bounds staleness of the public landing and settings
	// listings.
	ContentCacheTTL time.Duration
	// StateDir holds the durable client state file. Empty means the
	// platform user config dir.
	StateDir string

	// Object storage for the media bucket.
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string

	// Upload limits.
	UploadMaxSize      int64
	UploadAllowedTypes []string
}

// LoadDefaults populates c with sensible defaults. The MIME allow-list
// matches what the site accepts in its galleries.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.RequestTimeout = 30 * time.Second
	c.PollInterval = 30 * time.Second
	c.ContentCacheTTL = 5 * time.Minute
	c.StateDir = ""

	c.S3Region = "us-east-1"
	c.S3Bucket = "media"

	c.UploadMaxSize = 50 * 1024 * 1024
	c.UploadAllowedTypes = []string{
		"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
		"video/mp4", "video/avi", "video/mov",
		"application/pdf",
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON and the environment. Later sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}
