// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/amaumene/nzbio/internal/constants"
	apperrors "github.com/amaumene/nzbio/internal/errors"
	"github.com/amaumene/nzbio/pkg/security"
)

// Config holds the application configuration.
// It is built once at startup and passed by value to the components that need it.
type Config struct {
	Port string

	// Indexer (NZBHydra / newznab)
	HydraURL    string
	HydraAPIKey string

	// Catalog (TMDB)
	TMDBAPIKey  string
	TMDBBaseURL string

	// Content settings
	RetentionDays      int
	StrictMatch        bool
	TransliterateQuery bool

	// Timeouts
	SearchTimeout   time.Duration
	MetadataTimeout time.Duration
	RequestTimeout  time.Duration

	MetricsEnabled bool

	LogLevel   string
	LogFile    string
	LogMaxSize int
}

const (
	keyPort               = "port"
	keyHydraURL           = "hydra_url"
	keyHydraAPIKey        = "hydra_api_key"
	keyTMDBAPIKey         = "tmdb_api_key"
	keyTMDBBaseURL        = "tmdb_base_url"
	keyRetentionDays      = "retention_days"
	keyStrictMatch        = "strict_match"
	keyTransliterateQuery = "transliterate_query"
	keySearchTimeout      = "search_timeout"
	keyMetadataTimeout    = "tmdb_timeout"
	keyRequestTimeout     = "request_timeout"
	keyMetricsEnabled     = "metrics_enabled"
	keyLogLevel           = "log_level"
	keyLogFile            = "log_file"
	keyLogMaxSize         = "log_max_size"
	keyConfigFile         = "config_file"
)

// Load reads configuration from defaults, an optional JSON/TOML/YAML file and the
// environment. Environment variables take precedence over file values.
// When path is empty, CONFIG_FILE or config.json is tried; a missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path == "" {
		path = v.GetString(keyConfigFile)
	}

	if err := readFile(v, path); err != nil {
		return Config{}, apperrors.NewConfigurationError("failed to load config file", err)
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyPort, constants.DefaultPort)
	v.SetDefault(keyHydraURL, constants.DefaultHydraURL)
	v.SetDefault(keyHydraAPIKey, "")
	v.SetDefault(keyTMDBAPIKey, "")
	v.SetDefault(keyTMDBBaseURL, constants.DefaultTMDBBaseURL)
	v.SetDefault(keyRetentionDays, constants.DefaultRetentionDays)
	v.SetDefault(keyStrictMatch, false)
	v.SetDefault(keyTransliterateQuery, false)
	v.SetDefault(keySearchTimeout, constants.SearchTimeout)
	v.SetDefault(keyMetadataTimeout, constants.MetadataTimeout)
	v.SetDefault(keyRequestTimeout, constants.RequestTimeout)
	v.SetDefault(keyMetricsEnabled, true)
	v.SetDefault(keyLogLevel, constants.DefaultLogLevel)
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyLogMaxSize, 10)
	v.SetDefault(keyConfigFile, constants.DefaultConfigFile)
}

// readFile merges path into v. Ignores file not found errors.
func readFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	v.SetConfigFile(path)
	return v.ReadInConfig()
}

func fromViper(v *viper.Viper) Config {
	validator := security.NewAPIKeyValidator()

	return Config{
		Port:               strings.TrimSpace(v.GetString(keyPort)),
		HydraURL:           strings.TrimRight(strings.TrimSpace(v.GetString(keyHydraURL)), "/"),
		HydraAPIKey:        validator.SanitizeAPIKey(v.GetString(keyHydraAPIKey)),
		TMDBAPIKey:         validator.SanitizeAPIKey(v.GetString(keyTMDBAPIKey)),
		TMDBBaseURL:        strings.TrimRight(strings.TrimSpace(v.GetString(keyTMDBBaseURL)), "/"),
		RetentionDays:      v.GetInt(keyRetentionDays),
		StrictMatch:        v.GetBool(keyStrictMatch),
		TransliterateQuery: v.GetBool(keyTransliterateQuery),
		SearchTimeout:      v.GetDuration(keySearchTimeout),
		MetadataTimeout:    v.GetDuration(keyMetadataTimeout),
		RequestTimeout:     v.GetDuration(keyRequestTimeout),
		MetricsEnabled:     v.GetBool(keyMetricsEnabled),
		LogLevel:           strings.ToLower(v.GetString(keyLogLevel)),
		LogFile:            v.GetString(keyLogFile),
		LogMaxSize:         v.GetInt(keyLogMaxSize),
	}
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.RetentionDays <= 0 {
		return fmt.Errorf("RETENTION_DAYS must be positive, got %d", c.RetentionDays)
	}
	if c.SearchTimeout <= 0 || c.MetadataTimeout <= 0 || c.RequestTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if err := validateBaseURL(c.HydraURL); err != nil {
		return fmt.Errorf("HYDRA_URL: %w", err)
	}
	if err := validateBaseURL(c.TMDBBaseURL); err != nil {
		return fmt.Errorf("TMDB_BASE_URL: %w", err)
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

// WithPort returns a copy of c listening on port.
func (c Config) WithPort(port string) Config {
	if port != "" {
		c.Port = port
	}
	return c
}

// HydraAPIURL returns the indexer API endpoint, appending /api unless already present.
func (c Config) HydraAPIURL() string {
	if strings.HasSuffix(c.HydraURL, "/api") {
		return c.HydraURL
	}
	return c.HydraURL + "/api"
}
