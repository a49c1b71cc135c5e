// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv("config.yaml")
//	url := cfg.PriceGuide.URL
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scj643/pricing-csv/internal/domain/normalizer"
	"github.com/scj643/pricing-csv/internal/domain/record"
)

// Config represents the entire application configuration
type Config struct {
	Inventory  InventoryConfig  `yaml:"inventory"`
	PriceGuide PriceGuideConfig `yaml:"priceguide"`
	Gamestop   GamestopConfig   `yaml:"gamestop"`
	Output     OutputConfig     `yaml:"output"`
	Matcher    MatcherConfig    `yaml:"matcher"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InventoryConfig locates the retailer's inventory export.
type InventoryConfig struct {
	File          string `yaml:"file"`
	CategoryField string `yaml:"category_field"`
	NameField     string `yaml:"name_field"`
}

// PriceGuideConfig locates the price-guide feed. A configured file wins
// over the URL, which makes offline runs against a downloaded export easy.
type PriceGuideConfig struct {
	URL           string `yaml:"url"`
	File          string `yaml:"file"`
	CategoryField string `yaml:"category_field"`
	NameField     string `yaml:"name_field"`
	IDField       string `yaml:"id_field"`
}

// GamestopConfig locates the competitor price sheet.
type GamestopConfig struct {
	File string `yaml:"file"`
}

// OutputConfig controls the two result files.
type OutputConfig struct {
	WithIDs    string   `yaml:"with_ids"`
	WithoutIDs string   `yaml:"without_ids"`
	Columns    []string `yaml:"columns"`
}

// MatcherConfig selects the normalization behavior. StripChars, when set,
// overrides the named dialect with a literal character set.
type MatcherConfig struct {
	Dialect    string `yaml:"dialect"`
	StripChars string `yaml:"strip_chars"`
}

// FetchConfig tunes the single remote GET.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultColumns is the fixed output column order of the result files.
func DefaultColumns() []string {
	return []string{
		record.ColumnSKU,
		record.ColumnDesc,
		record.ColumnVendor,
		record.ColumnDept,
		record.ColumnCash,
		record.ColumnTrade,
		record.ColumnPrice,
		record.ColumnTax,
		record.ColumnID,
		record.ColumnNewPrice,
	}
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${PRICECHARTING_URL})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	cfg := &Config{
		Inventory: InventoryConfig{
			File: getEnv("PRICING_INVENTORY_FILE", "inventory.csv"),
		},
		PriceGuide: PriceGuideConfig{
			URL:  os.Getenv("PRICECHARTING_URL"),
			File: os.Getenv("PRICING_PRICEGUIDE_FILE"),
		},
		Gamestop: GamestopConfig{
			File: getEnv("PRICING_GAMESTOP_FILE", "gamestop.csv"),
		},
		Output: OutputConfig{
			WithIDs:    getEnv("PRICING_OUT_WITH_IDS", "with_ids.csv"),
			WithoutIDs: getEnv("PRICING_OUT_WITHOUT_IDS", "without_ids.csv"),
		},
		Matcher: MatcherConfig{
			Dialect: getEnv("PRICING_DIALECT", normalizer.DialectStripHyphens),
		},
		Fetch: FetchConfig{
			TimeoutSeconds: getEnvInt("PRICING_FETCH_TIMEOUT", 30),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadOrEnv tries to load from the given path, falls back to environment
// variables when the file is unreadable.
func LoadOrEnv(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// applyDefaults fills every field a minimal config may omit.
func (c *Config) applyDefaults() {
	if c.Inventory.CategoryField == "" {
		c.Inventory.CategoryField = record.ColumnDept
	}
	if c.Inventory.NameField == "" {
		c.Inventory.NameField = record.ColumnDesc
	}
	if c.PriceGuide.CategoryField == "" {
		c.PriceGuide.CategoryField = record.ColumnConsole
	}
	if c.PriceGuide.NameField == "" {
		c.PriceGuide.NameField = record.ColumnProductName
	}
	if c.PriceGuide.IDField == "" {
		c.PriceGuide.IDField = record.ColumnID
	}
	if len(c.Output.Columns) == 0 {
		c.Output.Columns = DefaultColumns()
	}
	if c.Output.WithIDs == "" {
		c.Output.WithIDs = "with_ids.csv"
	}
	if c.Output.WithoutIDs == "" {
		c.Output.WithoutIDs = "without_ids.csv"
	}
	if c.Matcher.Dialect == "" {
		c.Matcher.Dialect = normalizer.DialectStripHyphens
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		c.Fetch.TimeoutSeconds = 30
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate enforces the fatal startup conditions: some price-guide source
// must be configured and the normalization choice must resolve.
func (c *Config) Validate() error {
	if c.PriceGuide.URL == "" && c.PriceGuide.File == "" {
		return errors.New("config: priceguide needs a url or a file")
	}
	if _, err := c.StripSet(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// StripSet resolves the configured normalization strip set.
func (c *Config) StripSet() (normalizer.StripSet, error) {
	if c.Matcher.StripChars != "" {
		return normalizer.NewStripSet(c.Matcher.StripChars), nil
	}
	return normalizer.ForDialect(c.Matcher.Dialect)
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var result int
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}
