package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "DAO_INDEXER"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// EthereumConfig describes the node and the DAO contract being tracked
type EthereumConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ContractAddress string `mapstructure:"contract_address"`
	// ABIPath overrides the embedded DAO ABI; accepts a bare ABI array or a compiler artifact.
	// The embedded ABI assumes proposalId and the creator, voter or executor address are indexed
	// and every other argument is in data. Logs from a contract laid out differently fail to
	// decode, so point this at the deployed contract's ABI.
	ABIPath string `mapstructure:"abi_path"`
	// StartBlock is the floor the checkpoint is raised to on boot
	StartBlock uint64 `mapstructure:"start_block"`
	// ChunkSize is the number of blocks replayed per backfill step
	ChunkSize    uint64        `mapstructure:"chunk_size"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// RequestTimeout bounds a single JSON-RPC attempt
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// MaxRetryElapsed bounds the total time spent retrying one JSON-RPC call
	MaxRetryElapsed   time.Duration `mapstructure:"max_retry_elapsed"`
	BlockHeadTTL      time.Duration `mapstructure:"block_head_ttl"`
	BlockTimestampTTL time.Duration `mapstructure:"block_timestamp_ttl"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	PoolSize int `mapstructure:"pool_size"`
}

// MetricsConfig holds the prometheus listener configuration
type MetricsConfig struct {
	// Address is the listen address for /metrics, empty disables the listener
	Address string `mapstructure:"address"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// IndexerConfig holds configuration for dao-indexer
type IndexerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	Worker     WorkerConfig   `mapstructure:"worker"`
	Metrics    MetricsConfig  `mapstructure:"metrics"`
}

// APIConfig holds configuration for the query API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
}

// LoadIndexerConfig loads configuration for dao-indexer
func LoadIndexerConfig(configFile string, envPath string) (*IndexerConfig, error) {
	v := configureViper("dao-indexer", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("ethereum.start_block", 0)
	v.SetDefault("ethereum.chunk_size", 1000)
	v.SetDefault("ethereum.poll_interval", "5s")
	v.SetDefault("ethereum.request_timeout", "30s")
	v.SetDefault("ethereum.max_retry_elapsed", "2m")
	v.SetDefault("ethereum.block_head_ttl", "2s")
	v.SetDefault("ethereum.block_timestamp_ttl", 0)
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("metrics.address", ":9090")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg IndexerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values the indexer cannot start without
func (c *IndexerConfig) Validate() error {
	if err := c.Database.validate(); err != nil {
		return err
	}
	if c.Ethereum.RPCURL == "" {
		return errors.New("ethereum.rpc_url is required")
	}
	if c.Ethereum.ContractAddress == "" {
		return errors.New("ethereum.contract_address is required")
	}
	if !common.IsHexAddress(c.Ethereum.ContractAddress) {
		return fmt.Errorf("ethereum.contract_address %q is not a hex address", c.Ethereum.ContractAddress)
	}
	if c.Ethereum.ChunkSize == 0 {
		return errors.New("ethereum.chunk_size must be greater than 0")
	}
	if c.Ethereum.PollInterval <= 0 {
		return errors.New("ethereum.poll_interval must be positive")
	}
	if c.Worker.PoolSize <= 0 {
		return errors.New("worker.pool_size must be greater than 0")
	}
	return nil
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// readConfig reads the config file if there is one; env vars alone are a valid setup
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to read config: %w", err)
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars binds every known key so Unmarshal sees env-only values
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.contract_address",
		"ethereum.abi_path",
		"ethereum.start_block",
		"ethereum.chunk_size",
		"ethereum.poll_interval",
		"ethereum.request_timeout",
		"ethereum.max_retry_elapsed",
		"ethereum.block_head_ttl",
		"ethereum.block_timestamp_ttl",
		// Worker
		"worker.pool_size",
		// Metrics
		"metrics.address",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv overloads .env, .env.local and .env.<service>.local from envPath in that order
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot walks up from the working directory until it finds config/
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
