package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	API   APIConfig   `json:"api"`
	Cache CacheConfig `json:"cache"`
	UI    UIConfig    `json:"ui"`
}

// APIConfig holds SpaceX API settings
type APIConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// CacheConfig holds local cache settings
type CacheConfig struct {
	// TTLMinutes is how long cached rockets are served without refetching.
	TTLMinutes int `json:"ttl_minutes"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	Compact     bool `json:"compact"`
	ShowDetails bool `json:"show_details"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://api.spacexdata.com/v4",
			TimeoutSeconds: 30,
		},
		Cache: CacheConfig{
			TTLMinutes: 60,
		},
		UI: UIConfig{
			Compact:     false,
			ShowDetails: true,
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".rockets", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	// Zero values from a hand-edited file fall back to defaults.
	def := DefaultConfig()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	if cfg.Cache.TTLMinutes <= 0 {
		cfg.Cache.TTLMinutes = def.Cache.TTLMinutes
	}

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
