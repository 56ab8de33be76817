package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// APIServerConfig represents the CryptoBallot API server configuration
type APIServerConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Ethereum EthereumConfig `yaml:"ethereum"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"4000" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"90s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	AllowedOrigin   string        `yaml:"allowed_origin" default:"http://localhost:3000"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"cryptoballot" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	// MaxOpenConns caps the pool size; 0 leaves database/sql's default.
	MaxOpenConns int `yaml:"max_open_conns" default:"10" validate:"min=0"`
}

// EthereumConfig contains settings for the voting contract gateway
type EthereumConfig struct {
	RPCURL          string `yaml:"rpc_url" validate:"required,url"`
	ChainID         int64  `yaml:"chain_id" default:"11155111" validate:"gt=0"`
	ContractAddress string `yaml:"contract_address" validate:"required,eth_addr"`
	// PrivateKey signs create/vote/start-user transactions. Without it the
	// gateway is read-only.
	PrivateKey    string        `yaml:"private_key"`
	GasLimit      uint64        `yaml:"gas_limit" default:"500000"`
	MaxGasPrice   string        `yaml:"max_gas_price" validate:"omitempty,numeric"`
	CallTimeout   time.Duration `yaml:"call_timeout" default:"15s"`
	// MineTimeout bounds the wait for a receipt. It must be shorter than the
	// server's write and request timeouts so a slow block is reported with
	// its transaction hash instead of a cut connection.
	MineTimeout   time.Duration `yaml:"mine_timeout" default:"45s"`
	MaxRetries    uint64        `yaml:"max_retries" default:"2" validate:"max=10"`
	RetryInterval time.Duration `yaml:"retry_interval" default:"250ms"`
	MaxProbe      uint64        `yaml:"max_probe" default:"10000" validate:"gt=0"`
}

// AuthConfig contains token issuing settings
type AuthConfig struct {
	Issuer        string        `yaml:"issuer" default:"cryptoballot"`
	AccessSecret  string        `yaml:"access_secret" validate:"required,min=16"`
	RefreshSecret string        `yaml:"refresh_secret" validate:"required,min=16,nefield=AccessSecret"`
	AccessTTL     time.Duration `yaml:"access_ttl" default:"15m"`
	RefreshTTL    time.Duration `yaml:"refresh_ttl" default:"2400h"`
	BcryptCost    int           `yaml:"bcrypt_cost" default:"10" validate:"min=4,max=31"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// MetricsConfig contains prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics"`
}

// LoadAPIServer loads API server configuration from file.
// ${VAR} references in the file are expanded from the environment before parsing.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAPIServer(data)
}

// ParseAPIServer parses, defaults and validates raw YAML configuration.
func ParseAPIServer(data []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if err := cfg.checkTimeouts(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *APIServerConfig) checkTimeouts() error {
	mine := c.Ethereum.MineTimeout
	if mine >= c.Server.WriteTimeout {
		return fmt.Errorf("ethereum.mine_timeout (%s) must be shorter than server.write_timeout (%s)",
			mine, c.Server.WriteTimeout)
	}
	if mine >= c.Server.RequestTimeout {
		return fmt.Errorf("ethereum.mine_timeout (%s) must be shorter than server.request_timeout (%s)",
			mine, c.Server.RequestTimeout)
	}
	return nil
}

// Address returns the host:port pair the HTTP server binds to
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
