package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDatasetURL is where the launch dataset lives if nothing else is configured.
	DefaultDatasetURL = "https://raw.githubusercontent.com/olaa9199-cloud/SpaceMissionApp/refs/heads/main/dataset_from_space.CSV"
	// DefaultLogFile receives the logs in TUI mode, where stdout belongs to the UI.
	DefaultLogFile = "launchday.log"

	envPictureAPIKey = "NASA_API_KEY"
	envDataset       = "LAUNCHDAY_DATASET"

	maxLatitude  = 90
	maxLongitude = 180
)

var errInvalidConfig = errors.New("invalid config")

// Config holds all launchday configuration. Command line flags override the file.
type Config struct {
	Dataset     DatasetConfig  `yaml:"dataset"`
	Picture     PictureConfig  `yaml:"picture"`
	Summary     SummaryConfig  `yaml:"summary"`
	Observer    ObserverConfig `yaml:"observer"`
	HTTPTimeout string         `yaml:"http_timeout"`
	LogFile     string         `yaml:"log_file"`
	LogLevel    string         `yaml:"log_level"` // debug, info, warn, error
}

// DatasetConfig points to the launch CSV. Path wins over URL.
type DatasetConfig struct {
	Path string `yaml:"path"`
	URL  string `yaml:"url"`
}

// PictureConfig configures the picture of the day API.
type PictureConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// SummaryConfig configures the mission summary provider.
type SummaryConfig struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	MaxChars  int    `yaml:"max_chars"`
}

// ObserverConfig is the location distances to launch sites are measured from. Zero means unset.
type ObserverConfig struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path: "",
			URL:  DefaultDatasetURL,
		},
		Picture: PictureConfig{
			BaseURL: DefaultPictureBaseURL,
			APIKey:  DemoAPIKey,
		},
		Summary: SummaryConfig{
			BaseURL:   DefaultSummaryBaseURL,
			UserAgent: DefaultUserAgent,
			MaxChars:  DefaultSummaryChars,
		},
		Observer: ObserverConfig{
			Lat: 0,
			Lon: 0,
		},
		HTTPTimeout: DefaultHTTPTimeout.String(),
		LogFile:     DefaultLogFile,
		LogLevel:    "info",
	}
}

// LoadConfig loads configuration from a YAML file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loadConfig: failed to read config: %w", err)
		}

		if err == nil {
			if yamlErr := yaml.Unmarshal(data, cfg); yamlErr != nil {
				return nil, fmt.Errorf("loadConfig: failed to parse config: %w", yamlErr)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loadConfig: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv(envPictureAPIKey); key != "" {
		c.Picture.APIKey = key
	}

	if source := os.Getenv(envDataset); source != "" {
		c.SetDatasetSource(source)
	}
}

// SetDatasetSource takes either a URL or a file path.
func (c *Config) SetDatasetSource(source string) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		c.Dataset = DatasetConfig{Path: "", URL: source}
		return
	}

	c.Dataset = DatasetConfig{Path: source, URL: ""}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" && c.Dataset.URL == "" {
		return fmt.Errorf("%w: %w", errInvalidConfig, ErrNoSource)
	}

	if c.Summary.MaxChars < 0 {
		return fmt.Errorf("%w: summary.max_chars must not be negative, got %d", errInvalidConfig, c.Summary.MaxChars)
	}

	if c.Observer.Lat < -maxLatitude || c.Observer.Lat > maxLatitude ||
		c.Observer.Lon < -maxLongitude || c.Observer.Lon > maxLongitude {
		return fmt.Errorf("%w: observer location out of range: %v", errInvalidConfig, c.ObserverLocation())
	}

	if _, err := time.ParseDuration(c.HTTPTimeout); c.HTTPTimeout != "" && err != nil {
		return fmt.Errorf("%w: http_timeout: %w", errInvalidConfig, err)
	}

	return nil
}

// GetHTTPTimeout returns the configured timeout, or the default if unset.
func (c *Config) GetHTTPTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil || timeout <= 0 {
		return DefaultHTTPTimeout
	}

	return timeout
}

// GetLogLevel maps the configured level name to a slog level, info if unknown.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// DatasetSource returns where to load the launch dataset from.
func (c *Config) DatasetSource() DatasetSource {
	return DatasetSource{FilePath: c.Dataset.Path, URL: c.Dataset.URL}
}

// ObserverLocation returns the configured observer location.
func (c *Config) ObserverLocation() Coordinates {
	return NewCoordinates(c.Observer.Lat, c.Observer.Lon)
}
