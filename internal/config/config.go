package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"postpulse/internal/model"
	"postpulse/internal/profile"
)

// Config is the application's configuration model: serving addresses,
// storage, snapshot cadence, and optional overrides of the per-platform
// analytics tables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	// Per-platform posting-window overrides; merged over the built-ins.
	Profiles profile.Table `yaml:"profiles"`
	// Per-platform popular-hashtag overrides; merged over the built-ins.
	PopularHashtags profile.PopularTags `yaml:"popularHashtags"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	MetricsAddr string `yaml:"metricsAddr"`
	// Request rate limit (requests per second) and burst for the API.
	RateRPS   float64 `yaml:"rateRps"`
	RateBurst int     `yaml:"rateBurst"`
}

type StorageConfig struct {
	DBPath string `yaml:"dbPath"`
}

type SnapshotConfig struct {
	// Cron expression (with seconds) driving summary refreshes.
	Schedule string `yaml:"schedule"`
	// Platform the cached recommendation summary is computed for.
	Platform model.PlatformID `yaml:"platform"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			MetricsAddr: ":9090",
			RateRPS:     10,
			RateBurst:   20,
		},
		Storage:  StorageConfig{DBPath: "./postpulse.db"},
		Snapshot: SnapshotConfig{Schedule: "0 */15 * * * *", Platform: model.PlatformInstagram},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if v := os.Getenv("POSTPULSE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("POSTPULSE_METRICS_ADDR"); v != "" {
		c.Server.MetricsAddr = v
	}
	if v := os.Getenv("POSTPULSE_DB"); v != "" {
		c.Storage.DBPath = v
	}
}

// ProfileTable merges configured posting-window overrides over the
// built-in defaults.
func (c Config) ProfileTable() profile.Table {
	table := profile.DefaultTable()
	for platform, p := range c.Profiles {
		table[platform] = p
	}
	return table
}

// PopularTable merges configured popular-hashtag overrides over the
// built-in defaults.
func (c Config) PopularTable() profile.PopularTags {
	tags := profile.DefaultPopularTags()
	for platform, list := range c.PopularHashtags {
		tags[platform] = list
	}
	return tags
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
