// Package config loads and validates the cvebump service configuration from
// a YAML file, with environment variables taking precedence for deployment
// overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ash3dwards/cvebump/util"
)

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Upload   UploadConfig   `yaml:"upload"`
	Registry RegistryConfig `yaml:"registry"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port     int    `yaml:"port"`
	APIToken string `yaml:"api_token"`
}

// WebhookConfig configures chat webhook delivery of rendered reports.
type WebhookConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// UploadConfig configures the external report store client.
type UploadConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// RegistryConfig configures the advisory mirror and freshness poller.
type RegistryConfig struct {
	URL                 string   `yaml:"url"`
	Ecosystems          []string `yaml:"ecosystems"`
	PollIntervalMinutes int      `yaml:"poll_interval_minutes"`
}

// KafkaConfig configures report event production and consumption.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Webhook: WebhookConfig{
			TimeoutSeconds: 30,
		},
		Registry: RegistryConfig{
			URL:                 "https://api.osv.dev",
			Ecosystems:          []string{"npm", "PyPI"},
			PollIntervalMinutes: 60,
		},
		Kafka: KafkaConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "report-events",
		},
	}
}

// Load reads the YAML config at path, applies env overrides, and validates.
// A missing file falls back to defaults so local development needs no config.
func Load(path string) (*Config, error) {
	cfg := Default()

	if content, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := util.GetEnvDefault("CVEBUMP_WEBHOOK_URL", ""); v != "" {
		cfg.Webhook.URL = v
	}
	if v := util.GetEnvDefault("CVEBUMP_UPLOAD_URL", ""); v != "" {
		cfg.Upload.URL = v
	}
	if v := util.GetEnvDefault("CVEBUMP_API_TOKEN", ""); v != "" {
		cfg.Server.APIToken = v
	}
	if v := util.GetEnvDefault("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
}

// Validate enforces the configuration schema. Every violation is reported
// with the offending field path.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Webhook.TimeoutSeconds <= 0 {
		return fmt.Errorf("webhook.timeout_seconds must be positive, got %d", c.Webhook.TimeoutSeconds)
	}
	if c.Webhook.URL != "" && !strings.HasPrefix(c.Webhook.URL, "http") {
		return fmt.Errorf("webhook.url must be an http(s) URL, got %q", c.Webhook.URL)
	}
	if c.Upload.URL != "" && c.Upload.Token == "" {
		return fmt.Errorf("upload.token is required when upload.url is set")
	}
	if c.Registry.PollIntervalMinutes <= 0 {
		return fmt.Errorf("registry.poll_interval_minutes must be positive, got %d", c.Registry.PollIntervalMinutes)
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers must not be empty")
	}
	if c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic must not be empty")
	}
	return nil
}

// WebhookTimeout returns the webhook timeout as a duration.
func (c *Config) WebhookTimeout() time.Duration {
	return time.Duration(c.Webhook.TimeoutSeconds) * time.Second
}

// PollInterval returns the registry poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Registry.PollIntervalMinutes) * time.Minute
}
