package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/arachne/internal/deck"
	"github.com/joho/godotenv"
)

const (
	appName = "arachne"

	// EnvVariant overrides the configured default variant
	EnvVariant  = "ARACHNE_VARIANT"
	// EnvLogLevel overrides the configured log level
	EnvLogLevel = "ARACHNE_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	DefaultVariant string `toml:"default_variant"`
	FourColor      bool   `toml:"four_color"`
	LogLevel       string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultVariant: string(deck.DefaultVariant),
		LogLevel:       "info",
	}
}

// Variant resolves the configured default variant
func (c *Config) Variant() (deck.Variant, error) {
	return deck.ParseVariant(c.DefaultVariant)
}

// Level resolves the configured log level
func (c *Config) Level() (slog.Level, error) {
	return ParseLogLevel(c.LogLevel)
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// Load reads .env (if present), the config file (creating it with defaults
// if missing) and applies environment overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg, err := LoadFile(GetConfigFilePath())
	if err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if _, err := cfg.Variant(); err != nil {
		return nil, fmt.Errorf("invalid default variant: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads the config at path, creating a default one if it does not exist
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetDefaultVariant validates and stores the default variant in the config file
func SetDefaultVariant(name string) (deck.Variant, error) {
	v, err := deck.ParseVariant(name)
	if err != nil {
		return "", err
	}

	path := GetConfigFilePath()
	cfg, err := LoadFile(path)
	if err != nil {
		return "", err
	}

	cfg.DefaultVariant = string(v)
	if err := Save(path, cfg); err != nil {
		return "", err
	}

	return v, nil
}

// ParseLogLevel maps a level name to a slog level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvVariant); v != "" {
		cfg.DefaultVariant = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
