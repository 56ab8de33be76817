package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalYAML = `
database:
  user: ballot
  password: secret
ethereum:
  rpc_url: https://rpc.sepolia.org
  contract_address: "0x70D4772D570f56AA0DdE57dCA4CbBa72928c7107"
auth:
  access_secret: access-secret-0123456789
  refresh_secret: refresh-secret-0123456789
`

func TestParseAPIServer_AppliesDefaults(t *testing.T) {
	cfg, err := ParseAPIServer([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Fatalf("expected default port 4000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Ethereum.CallTimeout != 15*time.Second {
		t.Fatalf("expected call timeout 15s, got %s", cfg.Ethereum.CallTimeout)
	}
	if cfg.Ethereum.MaxRetries != 2 {
		t.Fatalf("expected 2 retries, got %d", cfg.Ethereum.MaxRetries)
	}
	if cfg.Auth.AccessTTL != 15*time.Minute {
		t.Fatalf("expected access ttl 15m, got %s", cfg.Auth.AccessTTL)
	}
	if cfg.Auth.RefreshTTL != 100*24*time.Hour {
		t.Fatalf("expected refresh ttl 100 days, got %s", cfg.Auth.RefreshTTL)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Fatalf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
}

func TestParseAPIServer_FileOverridesDefaults(t *testing.T) {
	raw := minimalYAML + `
server:
  port: 9000
logging:
  level: debug
  format: console
`
	cfg, err := ParseAPIServer([]byte(raw))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestParseAPIServer_ExpandsEnvironment(t *testing.T) {
	t.Setenv("BALLOT_DB_PASSWORD", "from-env")

	raw := strings.Replace(minimalYAML, "password: secret", "password: ${BALLOT_DB_PASSWORD}", 1)
	cfg, err := ParseAPIServer([]byte(raw))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}
	if cfg.Database.Password != "from-env" {
		t.Fatalf("expected password from env, got %q", cfg.Database.Password)
	}
}

func TestParseAPIServer_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"invalid contract address", "0x70D4772D570f56AA0DdE57dCA4CbBa72928c7107", "not-an-address"},
		{"missing rpc url", "rpc_url: https://rpc.sepolia.org", "rpc_url: \"\""},
		{"short access secret", "access_secret: access-secret-0123456789", "access_secret: short"},
		{"identical secrets", "refresh_secret: refresh-secret-0123456789", "refresh_secret: access-secret-0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := strings.Replace(minimalYAML, tt.from, tt.to, 1)
			if _, err := ParseAPIServer([]byte(raw)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestParseAPIServer_MineTimeoutBelowServerTimeouts(t *testing.T) {
	cfg, err := ParseAPIServer([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}
	if cfg.Ethereum.MineTimeout >= cfg.Server.WriteTimeout || cfg.Ethereum.MineTimeout >= cfg.Server.RequestTimeout {
		t.Fatalf("default mine timeout %s must be below write %s and request %s timeouts",
			cfg.Ethereum.MineTimeout, cfg.Server.WriteTimeout, cfg.Server.RequestTimeout)
	}

	tests := []struct {
		name    string
		mine    string
		write   string
		request string
	}{
		{"beyond write timeout", "3m", "60s", "5m"},
		{"beyond request timeout", "3m", "5m", "90s"},
		{"equal to write timeout", "60s", "60s", "90s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := strings.Replace(minimalYAML,
				"ethereum:\n", "ethereum:\n  mine_timeout: "+tt.mine+"\n", 1)
			raw += "server:\n  write_timeout: " + tt.write + "\n  request_timeout: " + tt.request + "\n"

			_, err := ParseAPIServer([]byte(raw))
			if err == nil || !strings.Contains(err.Error(), "mine_timeout") {
				t.Fatalf("expected mine_timeout validation error, got %v", err)
			}
		})
	}
}

func TestLoadAPIServer_MissingFile(t *testing.T) {
	_, err := LoadAPIServer(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAPIServer_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(minimalYAML), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadAPIServer(path)
	if err != nil {
		t.Fatalf("LoadAPIServer() failed: %v", err)
	}
	if cfg.Database.User != "ballot" {
		t.Fatalf("expected database user ballot, got %q", cfg.Database.User)
	}
	if got := cfg.Server.Address(); got != "0.0.0.0:4000" {
		t.Fatalf("unexpected server address %q", got)
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
