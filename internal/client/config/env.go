package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays cfg with CLUB_* environment variables. Unset or
// unparsable values leave the existing Config value in place.
func parseEnv(cfg *Config) {
	setString(&cfg.APIBaseURL, "CLUB_API_BASE_URL")
	setDuration(&cfg.RequestTimeout, "CLUB_REQUEST_TIMEOUT")
	setDuration(&cfg.PollInterval, "CLUB_POLL_INTERVAL")
	setDuration(&cfg.ContentCacheTTL, "CLUB_CONTENT_CACHE_TTL")
	setString(&cfg.StateDir, "CLUB_STATE_DIR")

	setString(&cfg.S3Endpoint, "CLUB_S3_ENDPOINT")
	setString(&cfg.S3Region, "CLUB_S3_REGION")
	setString(&cfg.S3Bucket, "CLUB_S3_BUCKET")
	setString(&cfg.S3AccessKey, "CLUB_S3_ACCESS_KEY")
	setString(&cfg.S3SecretKey, "CLUB_S3_SECRET_KEY")

	if v := os.Getenv("CLUB_UPLOAD_MAX_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.UploadMaxSize = n
		}
	}
	if v := os.Getenv("CLUB_UPLOAD_ALLOWED_TYPES"); v != "" {
		var types []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		if len(types) > 0 {
			cfg.UploadAllowedTypes = types
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		*dst = d
	}
}
