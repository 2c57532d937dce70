// Package config holds the checker's runtime configuration. The defaults
// mirror the hardcoded placeholders the tool started life with; a YAML file
// layers over them and a couple of env vars cover the secret-ish bits.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Product identifies what to poll. Immutable after load.
type Product struct {
	URL          string `yaml:"url"`
	CartID       string `yaml:"cart_id"`
	BottleHandle string `yaml:"bottle_handle"`
	FlavorHandle string `yaml:"flavor_handle"`
	Country      string `yaml:"country"`
	Language     string `yaml:"language"`
}

type NotifyConfig struct {
	Desktop    bool   `yaml:"desktop"`
	WebhookURL string `yaml:"webhook_url"`
}

type FileLogConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type LoggingConfig struct {
	Level string        `yaml:"level"`
	File  FileLogConfig `yaml:"file"`
}

type Config struct {
	Product  Product       `yaml:"product"`
	Interval Duration      `yaml:"interval"`
	Proxy    string        `yaml:"proxy"`
	Notify   NotifyConfig  `yaml:"notify"`
	Logging  LoggingConfig `yaml:"logging"`
}

// Duration accepts "300s"/"5m" strings or a bare number of seconds in YAML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		d.Duration = time.Duration(n) * time.Second
		return nil
	}

	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		d.Duration = parsed
		return nil
	}

	return fmt.Errorf("invalid duration at line %d", value.Line)
}

// Default returns the built-in configuration. The cart id and webhook URL
// are placeholders; edit them or supply a config file / env vars.
func Default() Config {
	return Config{
		Product: Product{
			URL:          "https://shop.air-up.com/it/en/bottles/classic/bottle-tritan-650ml-charcoal-grey-us",
			CartID:       "your_cart_id_here",
			BottleHandle: "bottle-tritan-650ml-charcoal-grey-us",
			FlavorHandle: "3-pod-variety-pack-vivid-vibes-udb",
			Country:      "it",
			Language:     "en",
		},
		Interval: Duration{5 * time.Minute},
		Notify: NotifyConfig{
			Desktop: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load layers a YAML file over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides the fields that usually live outside version control.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("AIRMON_WEBHOOK_URL"); v != "" {
		c.Notify.WebhookURL = v
	}
	if v := os.Getenv("AIRMON_PROXY"); v != "" {
		c.Proxy = v
	}
}

func (c *Config) Validate() error {
	if c.Product.URL == "" {
		return errors.New("product.url must be set")
	}
	if c.Product.BottleHandle == "" {
		return errors.New("product.bottle_handle must be set")
	}
	if c.Product.FlavorHandle == "" {
		return errors.New("product.flavor_handle must be set")
	}
	if c.Interval.Duration <= 0 {
		return errors.New("interval must be positive")
	}
	return nil
}
