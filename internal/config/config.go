package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	SourceHTTP   = "http"
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// DefaultSheetURL is the published CSV export of the Videos sheet.
const DefaultSheetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRr8GiFRfKLquD0j49JqKIL11tnulG7--WeJsvP3nqFc72EeQM3RsQjnWeXlgcVoR2RL5y7oqYbfpSs/pub?gid=162816128&single=true&output=csv"

// Config is the application configuration
type Config struct {
	// Dataset
	Source   string `yaml:"source"` // http, file or sqlite
	SheetURL string `yaml:"sheet_url"`
	CSVPath  string `yaml:"csv_path"`
	DBPath   string `yaml:"db_path"`

	// Refresh
	FetchTimeout    time.Duration `yaml:"fetch_timeout"`
	RefreshSchedule string        `yaml:"refresh_schedule"` // cron spec
	MinRefreshGap   time.Duration `yaml:"min_refresh_gap"`

	// View
	PageSize       int           `yaml:"page_size"`
	SearchDebounce time.Duration `yaml:"search_debounce"`
	ScrollDebounce time.Duration `yaml:"scroll_debounce"`
	TrendingWindow time.Duration `yaml:"trending_window"`

	// Logging
	LogLevel string `yaml:"log_level"`
	LogDir   string `yaml:"log_dir"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source:          SourceHTTP,
		SheetURL:        DefaultSheetURL,
		DBPath:          filepath.Join(homeDir(), ".courtside", "courtside.db"),
		FetchTimeout:    30 * time.Second,
		RefreshSchedule: "@every 1h",
		MinRefreshGap:   30 * time.Second,
		PageSize:        15,
		SearchDebounce:  300 * time.Millisecond,
		ScrollDebounce:  500 * time.Millisecond,
		TrendingWindow:  36 * time.Hour,
		LogLevel:        "info",
	}
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// ConfigPath returns the path to the config file, honouring COURTSIDE_CONFIG.
func ConfigPath() string {
	if path := os.Getenv("COURTSIDE_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(homeDir(), ".courtside", "config.yaml")
}

// Load reads the config at path over the defaults, then applies .env and
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from COURTSIDE_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("COURTSIDE_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("COURTSIDE_SHEET_URL"); v != "" {
		c.SheetURL = v
	}
	if v := os.Getenv("COURTSIDE_CSV"); v != "" {
		c.CSVPath = v
	}
	if v := os.Getenv("COURTSIDE_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("COURTSIDE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceHTTP:
		if c.SheetURL == "" {
			return fmt.Errorf("sheet_url is required for source %q", c.Source)
		}
	case SourceFile:
		if c.CSVPath == "" {
			return fmt.Errorf("csv_path is required for source %q", c.Source)
		}
	case SourceSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("db_path is required for source %q", c.Source)
		}
	default:
		return fmt.Errorf("unknown source %q (want http, file or sqlite)", c.Source)
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"fetch_timeout", c.FetchTimeout},
		{"search_debounce", c.SearchDebounce},
		{"scroll_debounce", c.ScrollDebounce},
		{"trending_window", c.TrendingWindow},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.d)
		}
	}
	if c.MinRefreshGap < 0 {
		return fmt.Errorf("min_refresh_gap must not be negative, got %s", c.MinRefreshGap)
	}
	if c.RefreshSchedule == "" {
		return errors.New("refresh_schedule is required")
	}
	return nil
}

// Save writes config to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
