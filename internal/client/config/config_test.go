package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.ContentCacheTTL)
	assert.Equal(t, int64(50*1024*1024), cfg.UploadMaxSize)
	assert.Contains(t, cfg.UploadAllowedTypes, "image/webp")
	assert.Contains(t, cfg.UploadAllowedTypes, "application/pdf")
	assert.NotContains(t, cfg.UploadAllowedTypes, "application/zip")
}

func TestApplyJSON_OverlaysOnlySetFields(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	var jc jsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{
		"api_base_url": "https://api.club.example",
		"poll_interval": "10s",
		"content_cache_ttl": 60000000000,
		"s3_bucket": "club-media"
	}`), &jc))
	applyJSON(&cfg, jc)

	assert.Equal(t, "https://api.club.example", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, time.Minute, cfg.ContentCacheTTL)
	assert.Equal(t, "club-media", cfg.S3Bucket)

	// Untouched fields keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(50*1024*1024), cfg.UploadMaxSize)
}

func TestJSONDuration_RejectsGarbage(t *testing.T) {
	var jc jsonConfig
	err := json.Unmarshal([]byte(`{"poll_interval": "soon"}`), &jc)
	require.Error(t, err)
}

func TestConfigFilePath_FlagBeatsEnv(t *testing.T) {
	t.Setenv("CLUB_CONFIG", "/from/env.json")

	assert.Equal(t, "/from/flag.json", configFilePath([]string{"-c", "/from/flag.json"}))
	assert.Equal(t, "/from/flag.json", configFilePath([]string{"-config=/from/flag.json"}))
	assert.Equal(t, "/from/env.json", configFilePath(nil))
}

func TestConfigFilePath_IgnoresForeignFlags(t *testing.T) {
	t.Setenv("CLUB_CONFIG", "")
	assert.Equal(t, "", configFilePath([]string{"-verbose", "-x", "1"}))
	assert.Equal(t, "conf.json", configFilePath([]string{"-verbose", "-c", "conf.json"}))
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("CLUB_API_BASE_URL", "https://env.club.example")
	t.Setenv("CLUB_POLL_INTERVAL", "15s")
	t.Setenv("CLUB_UPLOAD_MAX_SIZE", "1048576")
	t.Setenv("CLUB_UPLOAD_ALLOWED_TYPES", "image/png, image/jpeg")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://env.club.example", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.PollInterval)
	assert.Equal(t, int64(1048576), cfg.UploadMaxSize)
	assert.Equal(t, []string{"image/png", "image/jpeg"}, cfg.UploadAllowedTypes)
}

func TestParseEnv_IgnoresUnparsableDuration(t *testing.T) {
	t.Setenv("CLUB_REQUEST_TIMEOUT", "whenever")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "https://file.club.example"}`), 0o600))
	t.Setenv("CLUB_CONFIG", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://file.club.example", cfg.APIBaseURL)
}

func TestLoadConfig_BadFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))
	t.Setenv("CLUB_CONFIG", path)

	_, err := LoadConfig()
	require.Error(t, err)
}
