package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// jsonDuration accepts either a string like "30s" or integer nanoseconds.
type jsonDuration struct {
	time.Duration
}

func (d *jsonDuration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		d.Duration = time.Duration(t)
		return nil
	case string:
		parsed, err := time.ParseDuration(t)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	}
	return fmt.Errorf("invalid duration: %s", string(data))
}

// jsonConfig is the DTO used exclusively for JSON unmarshalling. Zero values
// mean "not set" and leave the existing Config value in place.
type jsonConfig struct {
	APIBaseURL         string       `json:"api_base_url"`
	RequestTimeout     jsonDuration `json:"request_timeout"`
	PollInterval       jsonDuration `json:"poll_interval"`
	ContentCacheTTL    jsonDuration `json:"content_cache_ttl"`
	StateDir           string       `json:"state_dir"`
	S3Endpoint         string       `json:"s3_endpoint"`
	S3Region           string       `json:"s3_region"`
	S3Bucket           string       `json:"s3_bucket"`
	S3AccessKey        string       `json:"s3_access_key"`
	S3SecretKey        string       `json:"s3_secret_key"`
	UploadMaxSize      int64        `json:"upload_max_size"`
	UploadAllowedTypes []string     `json:"upload_allowed_types"`
}

// configFilePath resolves the JSON file path: -c/-config flag first, then
// the CLUB_CONFIG environment variable. Unknown flags are ignored so the
// loader can coexist with other flag users.
func configFilePath(args []string) string {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	short := fs.String("c", "", "path to JSON config file")
	long := fs.String("config", "", "path to JSON config file")
	_ = fs.Parse(filterConfigArgs(args))

	switch {
	case *short != "":
		return *short
	case *long != "":
		return *long
	}
	return os.Getenv("CLUB_CONFIG")
}

// filterConfigArgs keeps only the -c/-config flags and their values.
func filterConfigArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "-c" || a == "--c" || a == "-config" || a == "--config" {
			out = append(out, a)
			if i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
			continue
		}
		for _, prefix := range []string{"-c=", "--c=", "-config=", "--config="} {
			if len(a) > len(prefix) && a[:len(prefix)] == prefix {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// parseJSON overlays cfg with values from the resolved JSON file, if any.
func parseJSON(cfg *Config) error {
	path := configFilePath(os.Args[1:])
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	applyJSON(cfg, jc)
	return nil
}

func applyJSON(cfg *Config, jc jsonConfig) {
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.PollInterval.Duration > 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.ContentCacheTTL.Duration > 0 {
		cfg.ContentCacheTTL = jc.ContentCacheTTL.Duration
	}
	if jc.StateDir != "" {
		cfg.StateDir = jc.StateDir
	}
	if jc.S3Endpoint != "" {
		cfg.S3Endpoint = jc.S3Endpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.UploadMaxSize > 0 {
		cfg.UploadMaxSize = jc.UploadMaxSize
	}
	if len(jc.UploadAllowedTypes) > 0 {
		cfg.UploadAllowedTypes = jc.UploadAllowedTypes
	}
}
