package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.osv.dev", cfg.Registry.URL)
	assert.Equal(t, []string{"npm", "PyPI"}, cfg.Registry.Ecosystems)
	assert.Equal(t, "report-events", cfg.Kafka.Topic)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
webhook:
  url: https://chat.example.com/hook
  timeout_seconds: 10
registry:
  url: https://mirror.example.com
  ecosystems: [npm]
  poll_interval_minutes: 15
kafka:
  brokers: [broker1:9092, broker2:9092]
  topic: reports
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://chat.example.com/hook", cfg.Webhook.URL)
	assert.Equal(t, 10*time.Second, cfg.WebhookTimeout())
	assert.Equal(t, 15*time.Minute, cfg.PollInterval())
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "reports", cfg.Kafka.Topic)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CVEBUMP_WEBHOOK_URL", "https://override.example.com/hook")
	t.Setenv("CVEBUMP_API_TOKEN", "secret-token")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com/hook", cfg.Webhook.URL)
	assert.Equal(t, "secret-token", cfg.Server.APIToken)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"bad webhook timeout", func(c *Config) { c.Webhook.TimeoutSeconds = 0 }, "webhook.timeout_seconds"},
		{"bad webhook url", func(c *Config) { c.Webhook.URL = "ftp://x" }, "webhook.url"},
		{"upload url without token", func(c *Config) { c.Upload.URL = "https://store" }, "upload.token"},
		{"bad poll interval", func(c *Config) { c.Registry.PollIntervalMinutes = -1 }, "registry.poll_interval_minutes"},
		{"no brokers", func(c *Config) { c.Kafka.Brokers = nil }, "kafka.brokers"},
		{"no topic", func(c *Config) { c.Kafka.Topic = "" }, "kafka.topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}
