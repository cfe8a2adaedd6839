package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSource      = "https://fakestoreapi.com/products"
	DefaultAddr        = ":8080"
	DefaultCurrency    = "$"
	DefaultNarrowWidth = 768
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Source string `yaml:"source"`
	// Timeout bounds a single fetch. Zero means no timeout.
	Timeout     time.Duration `yaml:"timeout"`
	Addr        string        `yaml:"addr"`
	Currency    string        `yaml:"currency"`
	NarrowWidth int           `yaml:"narrow_width"`
	Log         LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Source:      DefaultSource,
		Addr:        DefaultAddr,
		Currency:    DefaultCurrency,
		NarrowWidth: DefaultNarrowWidth,
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads the YAML file at path over the defaults and then applies the
// environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SHELF_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("SHELF_ADDR"); v != "" {
		c.Addr = v
	} else if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if v := os.Getenv("SHELF_CURRENCY"); v != "" {
		c.Currency = v
	}
	if v := os.Getenv("SHELF_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: SHELF_TIMEOUT: %w", ErrInvalidConfig, err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("SHELF_NARROW_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SHELF_NARROW_WIDTH: %w", ErrInvalidConfig, err)
		}
		c.NarrowWidth = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("%w: source cannot be empty", ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", ErrInvalidConfig)
	}
	if c.NarrowWidth < 0 {
		return fmt.Errorf("%w: narrow_width cannot be negative", ErrInvalidConfig)
	}
	return nil
}
