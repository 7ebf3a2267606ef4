// Package common provides shared utilities for MuskUnits
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the MuskUnits server
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Storage     StorageConfig   `toml:"storage"`
	Clients     ClientsConfig   `toml:"clients"`
	Reference   ReferenceConfig `toml:"reference"`
	Gold        GoldConfig      `toml:"gold"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the optional SurrealDB cache configuration.
// An empty Address disables the external cache entirely; the server
// then runs on in-memory snapshots only.
type StorageConfig struct {
	Address   string `toml:"address"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
	DataPath  string `toml:"data_path"` // local data dir (gold reserves JSON, rendered charts)
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	CoinGecko  ProviderConfig `toml:"coingecko"`
	FiscalData ProviderConfig `toml:"fiscaldata"`
	FRED       ProviderConfig `toml:"fred"`
	TIC        ProviderConfig `toml:"tic"`
	MarketCap  ProviderConfig `toml:"marketcap"`
	Yahoo      ProviderConfig `toml:"yahoo"`
}

// ProviderConfig holds per-provider HTTP configuration.
type ProviderConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"` // requests per second, 0 = client default
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *ProviderConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// ReferenceConfig holds the reference constant (the net worth every value
// is divided by) and how often snapshots are recomputed against it.
type ReferenceConfig struct {
	NetWorth        float64 `toml:"net_worth"`
	RefreshInterval string  `toml:"refresh_interval"`
}

// GetRefreshInterval parses and returns the refresh interval duration.
func (c *ReferenceConfig) GetRefreshInterval() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// GoldConfig holds the curated gold reserves dataset location.
type GoldConfig struct {
	ReservesFile string `toml:"reserves_file"`
	TopCountries int    `toml:"top_countries"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3850,
		},
		Storage: StorageConfig{
			Namespace: "muskunits",
			Database:  "cache",
			DataPath:  "data",
		},
		Clients: ClientsConfig{
			CoinGecko: ProviderConfig{
				BaseURL:   "https://api.coingecko.com/api/v3",
				RateLimit: 2,
				Timeout:   "20s",
			},
			FiscalData: ProviderConfig{
				BaseURL: "https://api.fiscaldata.treasury.gov/services/api/fiscal_service",
				Timeout: "30s",
			},
			FRED: ProviderConfig{
				BaseURL: "https://fred.stlouisfed.org/graph",
				Timeout: "30s",
			},
			TIC: ProviderConfig{
				BaseURL: "https://ticdata.treasury.gov/resource-center/data-chart-center/tic/Documents",
				Timeout: "60s",
			},
			MarketCap: ProviderConfig{
				BaseURL:   "https://companiesmarketcap.com",
				RateLimit: 1,
				Timeout:   "30s",
			},
			Yahoo: ProviderConfig{
				BaseURL:   "https://query1.finance.yahoo.com",
				RateLimit: 5,
				Timeout:   "15s",
			},
		},
		Reference: ReferenceConfig{
			NetWorth:        844_800_000_000, // $844.8B as of Feb 2026
			RefreshInterval: "5m",
		},
		Gold: GoldConfig{
			ReservesFile: "data/gold-reserves.json",
			TopCountries: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if config.Reference.NetWorth <= 0 {
		return nil, fmt.Errorf("reference net worth must be positive, got %f", config.Reference.NetWorth)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("MUSKUNITS_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("MUSKUNITS_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("MUSKUNITS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("MUSKUNITS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if addr := os.Getenv("MUSKUNITS_STORAGE_ADDRESS"); addr != "" {
		config.Storage.Address = addr
	}
	if v := os.Getenv("MUSKUNITS_STORAGE_USERNAME"); v != "" {
		config.Storage.Username = v
	}
	if v := os.Getenv("MUSKUNITS_STORAGE_PASSWORD"); v != "" {
		config.Storage.Password = v
	}

	if path := os.Getenv("MUSKUNITS_DATA_PATH"); path != "" {
		config.Storage.DataPath = path
		config.Gold.ReservesFile = filepath.Join(path, "gold-reserves.json")
	}

	if nw := os.Getenv("MUSKUNITS_NET_WORTH"); nw != "" {
		if v, err := strconv.ParseFloat(nw, 64); err == nil && v > 0 {
			config.Reference.NetWorth = v
		}
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
