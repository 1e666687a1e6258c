package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the command-line tools.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Store    StoreConfig    `yaml:"store"`
	SelfPlay SelfPlayConfig `yaml:"selfplay"`
	Perft    PerftConfig    `yaml:"perft"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// StoreConfig locates the saved-games database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// SelfPlayConfig drives cmd/selfplay.
type SelfPlayConfig struct {
	Games    int   `yaml:"games"`
	Workers  int   `yaml:"workers"`
	MaxPlies int   `yaml:"max_plies"`
	Seed     int64 `yaml:"seed"` // 0 = time based
	Verify   bool  `yaml:"verify"`
}

// PerftConfig drives cmd/perft.
type PerftConfig struct {
	Depth int `yaml:"depth"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{SelfPlay: SelfPlayConfig{Verify: true}}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file. Missing values get defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{SelfPlay: SelfPlayConfig{Verify: true}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.setDefaults()

	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
	return &cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Store.Path == "" {
		c.Store.Path = "data/abalone.db"
	}
	if c.SelfPlay.Games == 0 {
		c.SelfPlay.Games = 100
	}
	if c.SelfPlay.Workers == 0 {
		c.SelfPlay.Workers = 4
	}
	if c.SelfPlay.MaxPlies == 0 {
		c.SelfPlay.MaxPlies = 400
	}
	if c.Perft.Depth == 0 {
		c.Perft.Depth = 2
	}
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// Logger builds the process logger described by c.
func (c LogConfig) Logger() *slog.Logger {
	lvl, err := parseLevel(c.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
